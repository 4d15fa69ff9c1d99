package router

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// FragmentLoader reads page fragments from a filesystem.
//
// ".html" fragments are site-authored markup and are returned as is.
// ".md" fragments are rendered with goldmark and then passed through a
// bluemonday UGC policy, so editors can write Markdown with inline HTML
// without being able to inject scripts.
type FragmentLoader struct {
	fsys   fs.FS
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewFragmentLoader builds a loader over fsys.
func NewFragmentLoader(fsys fs.FS) *FragmentLoader {
	return &FragmentLoader{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithAttribute(),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: fragmentPolicy(),
	}
}

// fragmentPolicy is bluemonday's UGC policy plus class attributes, which
// the Markdown pages use for layout.
func fragmentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	return p
}

// Load returns the rendered fragment stored under name.
func (l *FragmentLoader) Load(name string) (template.HTML, error) {
	if l.fsys == nil {
		return "", fmt.Errorf("FragmentLoader.Load: no page filesystem")
	}

	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return "", fmt.Errorf("FragmentLoader.Load: read %s: %w", name, err)
	}

	switch path.Ext(name) {
	case ".html", ".htm":
		return template.HTML(raw), nil
	case ".md":
		var buf bytes.Buffer
		if err := l.md.Convert(raw, &buf); err != nil {
			return "", fmt.Errorf("FragmentLoader.Load: convert %s: %w", name, err)
		}
		return template.HTML(l.policy.SanitizeBytes(buf.Bytes())), nil
	default:
		return "", fmt.Errorf("FragmentLoader.Load: unsupported fragment type %q", name)
	}
}
