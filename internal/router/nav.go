package router

import "strings"

// NavItem is a link of the main navigation. Items with Children render
// as a dropdown toggle.
type NavItem struct {
	Label    string
	Href     string
	Active   bool
	Children []NavItem
}

// DefaultNav is the site's main navigation.
var DefaultNav = []NavItem{
	{Label: "Início", Href: "/"},
	{Label: "Sobre", Href: "/#sobre"},
	{Label: "Participe", Href: "#", Children: []NavItem{
		{Label: "Projetos", Href: "/projetos"},
		{Label: "Seja Voluntário", Href: "/cadastro"},
	}},
}

// linkActive reports whether a link to href is the current one for the
// route path. The home link only matches the home route; any other link
// matches when its href starts with the route path.
func linkActive(href, path string) bool {
	if path == "/" {
		return href == "/"
	}
	return strings.HasPrefix(href, path)
}

// ActiveNav returns a copy of items with Active set for path. A child
// match marks its dropdown toggle, not the child itself.
func ActiveNav(items []NavItem, path string) []NavItem {
	out := make([]NavItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Active = false

		if len(item.Children) == 0 {
			out[i].Active = linkActive(item.Href, path)
			continue
		}

		out[i].Children = make([]NavItem, len(item.Children))
		for j, child := range item.Children {
			out[i].Children[j] = child
			out[i].Children[j].Active = false
			if linkActive(child.Href, path) {
				out[i].Active = true
			}
		}
	}
	return out
}
