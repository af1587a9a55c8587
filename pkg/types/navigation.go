package types

import "github.com/a-h/templ"

type NavigationItem struct {
	Name     string
	Href     string
	Children []NavigationItem
	Icon     templ.Component
}
