package intl

import (
	"context"
	"errors"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/stablewatch/regmap/pkg/constants"
)

var ErrNoLocalizer = errors.New("localizer not found in context")

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

// allSupportedLanguages is the master list of languages the app ships
// locale files for.
var allSupportedLanguages = []SupportedLanguage{
	{
		Code:        "en",
		VerboseName: "English",
		Tag:         language.English,
	},
}

// GetSupportedLanguages returns a filtered list of supported languages based
// on the whitelist. If whitelist is nil or empty, all supported languages are
// returned.
func GetSupportedLanguages(whitelist []string) []SupportedLanguage {
	if len(whitelist) == 0 {
		return allSupportedLanguages
	}

	whitelistMap := make(map[string]bool)
	for _, code := range whitelist {
		whitelistMap[code] = true
	}

	filtered := make([]SupportedLanguage, 0, len(whitelist))
	for _, lang := range allSupportedLanguages {
		if whitelistMap[lang.Code] {
			filtered = append(filtered, lang)
		}
	}

	return filtered
}

func WithLocalizer(ctx context.Context, localizer *i18n.Localizer) context.Context {
	return context.WithValue(ctx, constants.LocalizerKey, localizer)
}

func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	localizer, ok := ctx.Value(constants.LocalizerKey).(*i18n.Localizer)
	return localizer, ok
}

func WithLocale(ctx context.Context, locale language.Tag) context.Context {
	return context.WithValue(ctx, constants.LocaleKey, locale)
}

func UseLocale(ctx context.Context) (language.Tag, bool) {
	locale, ok := ctx.Value(constants.LocaleKey).(language.Tag)
	return locale, ok
}
