// link/image.go
package link

import (
	"fmt"
	"html/template"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/dalemusser/syrup/tag"
	"github.com/dalemusser/syrup/text"
)

// ToImage renders an <img> wrapped in an anchor pointing at d.
//
// The reserved attrs keys alt, size, and align belong to the image and are
// moved onto it; whatever remains applies to the enclosing anchor. A size of
// the form "<width>x<height>" is split into separate width and height
// attributes. When alt is absent it is derived from the source filename:
// last path segment, extension stripped, first letter capitalized.
//
// A size value without exactly one "x" between two non-empty halves is
// malformed; it is dropped (no width/height emitted) and logged.
func (h *Helper) ToImage(src string, d Dest, attrs tag.Attrs) template.HTML {
	a := attrs.Clone()

	img := tag.Attrs{"src": h.ImagePath(src)}

	if alt, ok := a["alt"]; ok {
		img["alt"] = alt
		delete(a, "alt")
	} else {
		img["alt"] = altText(img["src"].(string))
	}

	if v, ok := a["size"]; ok {
		delete(a, "size")
		size := fmt.Sprint(v)
		if w, ht, ok := splitSize(size); ok {
			img["width"] = w
			img["height"] = ht
		} else {
			h.log.Warn("link: ignoring malformed image size",
				zap.String("size", size),
				zap.String("src", src),
			)
		}
	}

	if align, ok := a["align"]; ok {
		img["align"] = align
		delete(a, "align")
	}

	return h.To(tag.Tag("img", img), d, a)
}

// ImagePath expands an image source into a usable src attribute: bare names
// (no path separator) live under the configured image dir, extension-less
// sources get the default extension, and root-relative results are prefixed
// with the asset host when one is configured.
func (h *Helper) ImagePath(src string) string {
	if !strings.Contains(src, "/") {
		src = path.Join(h.imageDir, src)
	}
	if path.Ext(src) == "" {
		src += h.imageExt
	}
	if h.assetHost != "" && strings.HasPrefix(src, "/") {
		src = strings.TrimRight(h.assetHost, "/") + src
	}
	return src
}

// altText derives alt text from a source path: "a/b/pic.jpg" -> "Pic".
func altText(src string) string {
	base := path.Base(src)
	base = strings.TrimSuffix(base, path.Ext(base))
	return text.Capitalize(base)
}

// splitSize splits "30x45" into ("30", "45", true). Anything without
// exactly one "x" separating two non-empty halves reports false.
func splitSize(size string) (width, height string, ok bool) {
	width, height, found := strings.Cut(size, "x")
	if !found || width == "" || height == "" || strings.Contains(height, "x") {
		return "", "", false
	}
	return width, height, true
}
