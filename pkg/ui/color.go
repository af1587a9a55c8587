// Package ui holds presentation helpers shared by templates and viewmodels.
package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Shift amounts for the interaction states of a colored map region. Templates
// and the client-side script both rely on these exact values.
const (
	ShiftSelected      = 26
	ShiftHover         = 14
	ShiftHoverSelected = 34
	ShiftPressed       = 38
)

// Shift lightens (or darkens, for negative amounts) a 6-hex-digit color by
// adding amount to each RGB channel, clamped to [0, 255]. Any input that is
// not a 6-hex-digit color with an optional leading '#' is returned unmodified.
func Shift(hex string, amount int) string {
	raw := strings.TrimPrefix(hex, "#")
	if len(raw) != 6 {
		return hex
	}

	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return hex
	}

	r := clampByte(int(value>>16&0xff) + amount)
	g := clampByte(int(value>>8&0xff) + amount)
	b := clampByte(int(value&0xff) + amount)

	shifted := fmt.Sprintf("%02x%02x%02x", r, g, b)
	if strings.HasPrefix(hex, "#") {
		return "#" + shifted
	}
	return shifted
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
