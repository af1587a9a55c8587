package types

import (
	"net/url"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PageContext provides localization and page metadata for template rendering.
type PageContext struct {
	Locale    language.Tag
	URL       *url.URL
	Localizer *i18n.Localizer
	prefix    string
}

func (p *PageContext) T(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}

	messageID := k
	if p.prefix != "" {
		messageID = p.prefix + "." + k
	}

	if len(args) == 0 {
		return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: messageID})
	}
	return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: args[0]})
}

// TSafe is like T but returns an empty string on error instead of panicking.
func (p *PageContext) TSafe(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}

	messageID := k
	if p.prefix != "" {
		messageID = p.prefix + "." + k
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		cfg.TemplateData = args[0]
	}

	result, err := p.Localizer.Localize(cfg)
	if err != nil {
		return ""
	}

	return result
}

// Namespace returns a new PageContext with the specified prefix. All
// translation calls on the returned context will be prefixed with it.
func (p *PageContext) Namespace(prefix string) *PageContext {
	return &PageContext{
		Locale:    p.Locale,
		URL:       p.URL,
		Localizer: p.Localizer,
		prefix:    prefix,
	}
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}
