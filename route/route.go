// route/route.go
//
// Package route resolves symbolic routing options (controller/action/id plus
// query params) into concrete URLs, and tracks the routing context of the
// in-flight request so helpers can detect self-links.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Options describes a routing target symbolically. The zero value is not a
// valid target; at minimum Controller must be set for PathRouter.
type Options struct {
	Controller string
	Action     string
	ID         string

	// Params becomes the query string. Keys named controller/action/id are
	// fine here; they are only special when comparing against the current
	// request (see Current.Matches).
	Params url.Values

	// OnlyPath selects between a root-relative path and a full URL.
	// nil means unset; URL resolution treats unset as true.
	OnlyPath *bool

	// Anchor is appended as a #fragment.
	Anchor string
}

// Clone returns a deep copy of o (Params included), so resolution can apply
// defaults without touching the caller's value.
func (o Options) Clone() Options {
	out := o
	if o.Params != nil {
		out.Params = make(url.Values, len(o.Params))
		for k, vs := range o.Params {
			out.Params[k] = append([]string(nil), vs...)
		}
	}
	return out
}

// Bool returns a pointer to v, for OnlyPath literals.
func Bool(v bool) *bool { return &v }

// Router resolves Options into a URL string. Implementations own the option
// vocabulary; PathRouter below is the default mechanical expansion.
type Router interface {
	Resolve(opts Options) (string, error)
}

// ErrNoController is returned when Options carry no controller.
var ErrNoController = errors.New("route: options have no controller")

// PathRouter is the default Router. It expands Options into
// /controller/action/id, appends encoded Params as the query string and
// Anchor as the fragment, and prefixes scheme://host when OnlyPath is false.
//
// The action segment defaults to "index" and is omitted (along with the id)
// when it is "index" and no id is present, so {Controller: "pages"} resolves
// to "/pages".
type PathRouter struct {
	// Scheme defaults to "http" when empty.
	Scheme string

	// Host is required only for full-URL resolution (OnlyPath=false).
	Host string
}

func (pr PathRouter) Resolve(opts Options) (string, error) {
	if opts.Controller == "" {
		return "", ErrNoController
	}

	action := opts.Action
	if action == "" {
		action = "index"
	}

	var b strings.Builder

	onlyPath := opts.OnlyPath == nil || *opts.OnlyPath
	if !onlyPath {
		if pr.Host == "" {
			return "", fmt.Errorf("route: full URL requested but router has no host")
		}
		scheme := pr.Scheme
		if scheme == "" {
			scheme = "http"
		}
		b.WriteString(scheme)
		b.WriteString("://")
		b.WriteString(pr.Host)
	}

	b.WriteByte('/')
	b.WriteString(url.PathEscape(opts.Controller))
	if action != "index" || opts.ID != "" {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(action))
	}
	if opts.ID != "" {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(opts.ID))
	}

	if len(opts.Params) > 0 {
		b.WriteByte('?')
		b.WriteString(opts.Params.Encode())
	}
	if opts.Anchor != "" {
		b.WriteByte('#')
		b.WriteString(url.PathEscape(opts.Anchor))
	}

	return b.String(), nil
}
