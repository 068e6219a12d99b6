// link/link.go
//
// Package link generates anchor and image-link markup from routing options,
// mirroring the URL construction the controller layer uses. It delegates URL
// expansion to a route.Router and markup rendering to package tag; the
// helpers themselves are request-scoped string assembly with no state beyond
// the Helper's configuration.
package link

import (
	"errors"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/dalemusser/syrup/route"
	"github.com/dalemusser/syrup/tag"
)

// Dest is a link destination: either a literal URL or symbolic routing
// options resolved through the Helper's Router.
type Dest interface {
	dest()
}

// URL is a literal href used verbatim, e.g. link.URL("/about").
type URL string

func (URL) dest() {}

// Route wraps route.Options as a destination.
type Route route.Options

func (Route) dest() {}

// Fallback produces replacement markup when a conditional link is
// suppressed (e.g. the destination is the current page).
type Fallback func(name any, d Dest, attrs tag.Attrs) template.HTML

// ErrNilDest is returned by URLFor when no destination was given.
var ErrNilDest = errors.New("link: nil destination")

// Helper generates link markup. Construct with New (or NewFromConfig) and
// share freely; it is safe for concurrent use since every call works on its
// own copies of the argument maps.
type Helper struct {
	router    route.Router
	log       *zap.Logger
	imageDir  string
	imageExt  string
	assetHost string
}

// Option configures a Helper.
type Option func(*Helper)

// WithLogger sets the logger used for recoverable input problems
// (unresolvable destinations, malformed size strings). nil is allowed.
func WithLogger(l *zap.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.log = l
		}
	}
}

// WithImageDir sets the directory prefixed onto bare image names
// (default "/images"). Empty keeps the default.
func WithImageDir(dir string) Option {
	return func(h *Helper) {
		if dir != "" {
			h.imageDir = dir
		}
	}
}

// WithImageExt sets the extension appended to extension-less image sources
// (default ".png"). Empty keeps the default.
func WithImageExt(ext string) Option {
	return func(h *Helper) {
		if ext != "" {
			h.imageExt = ext
		}
	}
}

// WithAssetHost prefixes root-relative image sources with a static asset
// host, e.g. "https://assets.example.com".
func WithAssetHost(host string) Option {
	return func(h *Helper) { h.assetHost = host }
}

// New returns a Helper bound to r.
func New(r route.Router, opts ...Option) *Helper {
	h := &Helper{
		router:   r,
		log:      zap.NewNop(),
		imageDir: "/images",
		imageExt: ".png",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// URLFor resolves d into a URL string. Literal URLs pass through untouched;
// routing options get OnlyPath defaulted to true (an explicit value is
// honored) before being handed to the Router. Router errors propagate.
func (h *Helper) URLFor(d Dest) (string, error) {
	switch t := d.(type) {
	case URL:
		return string(t), nil
	case Route:
		opts := route.Options(t).Clone()
		if opts.OnlyPath == nil {
			opts.OnlyPath = route.Bool(true)
		}
		return h.router.Resolve(opts)
	case nil:
		return "", ErrNilDest
	default:
		return "", fmt.Errorf("link: unsupported destination %T", d)
	}
}

// To renders an anchor around name pointing at d.
//
// A "confirm" entry in attrs becomes an onclick confirm guard
// (`return confirm('<message>');`) and is removed before rendering. The
// resolved href always wins over a stray caller-supplied href. attrs is
// never mutated; all extraction happens on a copy.
//
// If the destination cannot be resolved the anchor is rendered without an
// href and the problem is logged, keeping template rendering total.
func (h *Helper) To(name any, d Dest, attrs tag.Attrs) template.HTML {
	a := attrs.Clone()

	if msg, ok := a["confirm"]; ok {
		delete(a, "confirm")
		a["onclick"] = fmt.Sprintf("return confirm('%v');", msg)
	}

	href, err := h.URLFor(d)
	if err != nil {
		h.log.Warn("link: could not resolve destination", zap.Error(err))
		delete(a, "href")
	} else {
		// merged last so the computed href wins over a stray caller href
		a.Merge(tag.Attrs{"href": href})
	}

	return tag.ContentTag("a", name, a)
}

// ToIf renders the link only when cond is true. Otherwise it invokes fb, or
// falls back to the name rendered as escaped plain text.
func (h *Helper) ToIf(cond bool, name any, d Dest, attrs tag.Attrs, fb Fallback) template.HTML {
	if cond {
		return h.To(name, d, attrs)
	}
	if fb != nil {
		return fb(name, d, attrs)
	}
	return plainName(name)
}

// ToUnless is ToIf with the condition inverted.
func (h *Helper) ToUnless(cond bool, name any, d Dest, attrs tag.Attrs, fb Fallback) template.HTML {
	return h.ToIf(!cond, name, d, attrs, fb)
}

// ToUnlessCurrent renders a link to opts unless it addresses the page cur
// describes (per route.Current.Matches, including the cascade fill of unset
// controller/action/id). The rendered link targets the filled options, so a
// partially specified target resolves against the current request. For the
// current page the name is rendered as plain text, or fb's markup when a
// fallback is provided.
func (h *Helper) ToUnlessCurrent(cur route.Current, name any, opts route.Options, attrs tag.Attrs, fb Fallback) template.HTML {
	return h.ToUnless(cur.Matches(opts), name, Route(cur.Fill(opts)), attrs, fb)
}

// CurrentPage reports whether opts addresses the page cur describes. Useful
// on its own for nav highlighting.
func (h *Helper) CurrentPage(cur route.Current, opts route.Options) bool {
	return cur.Matches(opts)
}

// plainName renders a suppressed link's name: trusted markup stays as-is,
// anything else is escaped.
func plainName(name any) template.HTML {
	if html, ok := name.(template.HTML); ok {
		return html
	}
	return template.HTML(tag.Escape(fmt.Sprint(name)))
}
