// Package web embeds the site's layout templates, page fragments and
// static assets into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates pages static
var files embed.FS

// Templates holds the layout templates.
func Templates() fs.FS {
	return sub("templates")
}

// Pages holds the route fragments (.html and .md).
func Pages() fs.FS {
	return sub("pages")
}

// Static holds CSS and JavaScript served under /static/.
func Static() fs.FS {
	return sub("static")
}

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// Only reachable if the embed directive and dir disagree.
		panic(err)
	}
	return f
}
