// Package templates renders the map page. The markup lives in gohtml files
// embedded alongside this package and is exposed as templ components.
package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"

	"github.com/stablewatch/regmap/modules/regmap/presentation/viewmodels"
)

//go:embed *.gohtml
var files embed.FS

var pages = template.Must(template.ParseFS(files, "*.gohtml"))

// Index renders the full map page.
func Index(page viewmodels.IndexPage) templ.Component {
	return templ.FromGoHTML(pages.Lookup("index"), page)
}

// StatePanel renders the detail panel on its own, used for partial swaps.
func StatePanel(panel viewmodels.StatePanel) templ.Component {
	return templ.FromGoHTML(pages.Lookup("state_panel"), panel)
}
