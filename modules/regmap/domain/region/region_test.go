package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_NumericCodeWins(t *testing.T) {
	// The code lookup takes precedence even when the name would disagree.
	abbr, ok := Resolve("36", "Texas")
	require.True(t, ok)
	require.Equal(t, "NY", abbr)
}

func TestResolve_PadsSingleDigitCodes(t *testing.T) {
	abbr, ok := Resolve("1", "")
	require.True(t, ok)
	require.Equal(t, "AL", abbr)

	abbr, ok = Resolve("01", "")
	require.True(t, ok)
	require.Equal(t, "AL", abbr)
}

func TestResolve_FallsBackToName(t *testing.T) {
	abbr, ok := Resolve("999", "Wyoming")
	require.True(t, ok)
	require.Equal(t, "WY", abbr)

	abbr, ok = Resolve("not-a-code", "District of Columbia")
	require.True(t, ok)
	require.Equal(t, "DC", abbr)
}

func TestResolve_DoubleMiss(t *testing.T) {
	_, ok := Resolve("999", "Atlantis")
	require.False(t, ok)
}

func TestName_CoversEveryAbbreviation(t *testing.T) {
	for _, abbr := range AllAbbrs() {
		name, ok := Name(abbr)
		require.True(t, ok, "abbr %s", abbr)
		require.NotEmpty(t, name, "abbr %s", abbr)
	}
}

func TestName_Unknown(t *testing.T) {
	_, ok := Name("ZZ")
	require.False(t, ok)
}

func TestAllAbbrs_Count(t *testing.T) {
	// 50 states + DC + 5 territories.
	require.Len(t, AllAbbrs(), 56)
}
