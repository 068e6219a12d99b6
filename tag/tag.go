// tag/tag.go
//
// Package tag builds escaped HTML markup. It is the rendering substrate the
// link helpers delegate to; nothing in here knows about routing.
package tag

import (
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"
)

// Attrs holds the attributes for a single element.
//
// Rendering rules:
//   - keys are emitted in sorted order so output is deterministic
//   - a nil value omits the attribute entirely
//   - a bool renders as a bare attribute when true and is omitted when false
//   - everything else is stringified and attribute-escaped
type Attrs map[string]any

// Clone returns a copy of a. Helpers that extract reserved keys (confirm,
// alt, size, align) work on a clone so the caller's map is never mutated.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return Attrs{}
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge copies the entries of others into a, later maps winning on key
// collisions, and returns a for chaining.
func (a Attrs) Merge(others ...Attrs) Attrs {
	for _, o := range others {
		for k, v := range o {
			a[k] = v
		}
	}
	return a
}

// Tag renders a void element: <name attr="value">.
func Tag(name string, attrs Attrs) template.HTML {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	writeAttrs(&b, attrs)
	b.WriteByte('>')
	return template.HTML(b.String())
}

// ContentTag renders an element with content: <name attr="value">content</name>.
//
// Content that is already template.HTML is trusted and embedded verbatim
// (this is how an <img> ends up inside an <a>); any other value is
// stringified and escaped.
func ContentTag(name string, content any, attrs Attrs) template.HTML {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	writeAttrs(&b, attrs)
	b.WriteByte('>')
	switch c := content.(type) {
	case template.HTML:
		b.WriteString(string(c))
	case nil:
		// empty content
	default:
		b.WriteString(html.EscapeString(fmt.Sprint(c)))
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return template.HTML(b.String())
}

// Escape HTML-escapes s for use as text content or an attribute value.
func Escape(s string) string {
	return html.EscapeString(s)
}

func writeAttrs(b *strings.Builder, attrs Attrs) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if attrs[k] == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				b.WriteByte(' ')
				b.WriteString(k)
			}
		default:
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(fmt.Sprint(v)))
			b.WriteByte('"')
		}
	}
}
