package route

import (
	"errors"
	"net/url"
	"testing"
)

func TestPathRouterResolve(t *testing.T) {
	tests := []struct {
		name string
		pr   PathRouter
		opts Options
		want string
	}{
		{"controller only collapses to index", PathRouter{},
			Options{Controller: "pages"}, "/pages"},
		{"controller and action", PathRouter{},
			Options{Controller: "pages", Action: "home"}, "/pages/home"},
		{"controller action id", PathRouter{},
			Options{Controller: "posts", Action: "show", ID: "7"}, "/posts/show/7"},
		{"id forces index segment", PathRouter{},
			Options{Controller: "posts", ID: "7"}, "/posts/index/7"},
		{"params become query", PathRouter{},
			Options{Controller: "posts", Action: "list", Params: url.Values{"page": {"2"}}},
			"/posts/list?page=2"},
		{"anchor", PathRouter{},
			Options{Controller: "docs", Action: "faq", Anchor: "pricing"}, "/docs/faq#pricing"},
		{"id is path-escaped", PathRouter{},
			Options{Controller: "posts", Action: "show", ID: "a b"}, "/posts/show/a%20b"},
		{"full url", PathRouter{Scheme: "https", Host: "example.com"},
			Options{Controller: "pages", Action: "home", OnlyPath: Bool(false)},
			"https://example.com/pages/home"},
		{"full url defaults scheme to http", PathRouter{Host: "example.com"},
			Options{Controller: "pages", OnlyPath: Bool(false)}, "http://example.com/pages"},
		{"nil OnlyPath means path only", PathRouter{Scheme: "https", Host: "example.com"},
			Options{Controller: "pages"}, "/pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pr.Resolve(tt.opts)
			if err != nil {
				t.Fatalf("Resolve(%+v) error: %v", tt.opts, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%+v) = %q, want %q", tt.opts, got, tt.want)
			}
		})
	}
}

func TestPathRouterResolveErrors(t *testing.T) {
	if _, err := (PathRouter{}).Resolve(Options{}); !errors.Is(err, ErrNoController) {
		t.Errorf("expected ErrNoController, got %v", err)
	}
	_, err := (PathRouter{}).Resolve(Options{Controller: "pages", OnlyPath: Bool(false)})
	if err == nil {
		t.Error("full URL without a host should fail")
	}
}

func TestOptionsCloneIsDeep(t *testing.T) {
	orig := Options{Controller: "posts", Params: url.Values{"page": {"1"}}}
	c := orig.Clone()
	c.Params.Set("page", "2")
	if got := orig.Params.Get("page"); got != "1" {
		t.Errorf("Clone shares Params: page = %q", got)
	}
}
