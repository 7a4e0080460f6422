package scaffold

import (
	"strings"

	"github.com/contestkit-labs/contestkit/internal/options"
)

// Fragment produces one piece of a synthesized file, or reports false when
// it does not apply to the options.
type Fragment func(o *options.Options) (string, bool)

// Document is a synthesized file: fragments rendered in order.
type Document struct {
	// Path is relative to the project root, slash separated.
	Path string

	// Applies reports whether the file is generated at all. Nil means always.
	Applies func(o *options.Options) bool

	Fragments []Fragment
}

// File is rendered output ready to be written.
type File struct {
	Path    string
	Content []byte
}

// Render concatenates every applicable fragment.
func (d Document) Render(o *options.Options) string {
	var b strings.Builder
	for _, f := range d.Fragments {
		if s, ok := f(o); ok {
			b.WriteString(s)
		}
	}
	return b.String()
}

// applies reports whether d is generated for o.
func (d Document) applies(o *options.Options) bool {
	return d.Applies == nil || d.Applies(o)
}

// Line always emits s followed by a newline.
func Line(s string) Fragment {
	return func(*options.Options) (string, bool) {
		return s + "\n", true
	}
}

// Blank emits an empty line.
func Blank() Fragment {
	return Line("")
}

// Linef emits the line built by fn.
func Linef(fn func(o *options.Options) string) Fragment {
	return func(o *options.Options) (string, bool) {
		return fn(o) + "\n", true
	}
}

// Lines emits every line built by fn. An empty result emits nothing.
func Lines(fn func(o *options.Options) []string) Fragment {
	return func(o *options.Options) (string, bool) {
		lines := fn(o)
		if len(lines) == 0 {
			return "", false
		}
		return strings.Join(lines, "\n") + "\n", true
	}
}

// When emits frags in order only if pred holds.
func When(pred func(o *options.Options) bool, frags ...Fragment) Fragment {
	return func(o *options.Options) (string, bool) {
		if !pred(o) {
			return "", false
		}
		var b strings.Builder
		for _, f := range frags {
			if s, ok := f(o); ok {
				b.WriteString(s)
			}
		}
		return b.String(), true
	}
}

// Unless emits frags in order only if pred does not hold.
func Unless(pred func(o *options.Options) bool, frags ...Fragment) Fragment {
	return When(func(o *options.Options) bool { return !pred(o) }, frags...)
}

// Render renders every applicable document in order.
func Render(o *options.Options, docs []Document) []File {
	var files []File
	for _, d := range docs {
		if !d.applies(o) {
			continue
		}
		files = append(files, File{Path: d.Path, Content: []byte(d.Render(o))})
	}
	return files
}
