// route/current.go
package route

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Current captures the routing context of the in-flight request. It is
// read-only from the helpers' perspective: they consult it to detect links
// that point at the page being rendered.
type Current struct {
	Controller string
	Action     string
	ID         string
	Params     url.Values
}

// routingKeys are excluded when comparing query params against a target;
// they address the route itself, not the page's query state.
var routingKeys = map[string]bool{
	"controller": true,
	"action":     true,
	"id":         true,
}

// Fill completes opts from the current request, cascading outer-to-inner:
// Controller is taken from the request only when opts leaves it unset, the
// Action only when the Controller was also unset, and the ID only when both
// were. An explicit Controller therefore pins the whole target.
func (c Current) Fill(opts Options) Options {
	filled := opts.Clone()
	if filled.Controller == "" {
		filled.Controller = c.Controller
		if filled.Action == "" {
			filled.Action = c.Action
			if filled.ID == "" {
				filled.ID = c.ID
			}
		}
	}
	return filled
}

// Matches reports whether opts, after Fill, addresses the page c describes.
// Controller, action, and id must all agree; an unset action on either side
// means "index", matching PathRouter's default. Query params are compared
// (minus routing keys) only when opts carries a Params map at all.
func (c Current) Matches(opts Options) bool {
	filled := c.Fill(opts)
	if filled.Controller != c.Controller ||
		defaultAction(filled.Action) != defaultAction(c.Action) ||
		filled.ID != c.ID {
		return false
	}
	if opts.Params == nil {
		return true
	}
	return sameParams(filled.Params, c.Params)
}

func defaultAction(a string) string {
	if a == "" {
		return "index"
	}
	return a
}

// sameParams compares two query param sets ignoring routing keys.
func sameParams(a, b url.Values) bool {
	return equalFiltered(a, b) && equalFiltered(b, a)
}

func equalFiltered(a, b url.Values) bool {
	for k, avs := range a {
		if routingKeys[k] {
			continue
		}
		bvs := b[k]
		if len(avs) != len(bvs) {
			return false
		}
		for i := range avs {
			if avs[i] != bvs[i] {
				return false
			}
		}
	}
	return true
}

type currentCtxKey struct{}

// NewContext returns ctx carrying cur.
func NewContext(ctx context.Context, cur Current) context.Context {
	return context.WithValue(ctx, currentCtxKey{}, cur)
}

// FromContext returns the Current stored by WithCurrent (or NewContext).
func FromContext(ctx context.Context) (Current, bool) {
	cur, ok := ctx.Value(currentCtxKey{}).(Current)
	return cur, ok
}

// CurrentFromRequest derives the request's routing context from chi URL
// params named "controller", "action", and "id" plus the query string. It is
// meant for catch-all patterns like /{controller}/{action}/{id}; routes that
// don't follow that shape should use Routed instead.
func CurrentFromRequest(r *http.Request) Current {
	cur := Current{Params: r.URL.Query()}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		cur.Controller = chi.URLParam(r, "controller")
		cur.Action = chi.URLParam(r, "action")
		cur.ID = chi.URLParam(r, "id")
	}
	if cur.Action == "" && cur.Controller != "" {
		cur.Action = "index"
	}
	return cur
}

// WithCurrent is middleware that stores CurrentFromRequest's result on the
// request context, where the self-link helpers pick it up.
//
// Apply it inline (r.With, or inside r.Group/r.Route) rather than with a
// top-level r.Use: chi only populates URL params once the route has been
// matched, and top-level middleware runs before matching.
func WithCurrent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(r.Context(), CurrentFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Routed annotates a fixed route with its controller/action pair. Use it
// per-route when URL patterns don't encode the controller and action:
//
//	r.With(route.Routed("pages", "home")).Get("/", homeHandler)
func Routed(controller, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cur := Current{
				Controller: controller,
				Action:     action,
				ID:         chi.URLParam(r, "id"),
				Params:     r.URL.Query(),
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), cur)))
		})
	}
}
