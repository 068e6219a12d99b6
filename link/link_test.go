package link

import (
	"errors"
	"html/template"
	"net/url"
	"strings"
	"testing"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dalemusser/syrup/route"
	"github.com/dalemusser/syrup/tag"
)

// captureRouter records the options it was asked to resolve.
type captureRouter struct {
	got route.Options
	url string
	err error
}

func (c *captureRouter) Resolve(opts route.Options) (string, error) {
	c.got = opts
	return c.url, c.err
}

func TestURLForDefaultsOnlyPath(t *testing.T) {
	r := &captureRouter{url: "/pages/home"}
	h := New(r)

	got, err := h.URLFor(Route{Controller: "pages", Action: "home"})
	if err != nil {
		t.Fatalf("URLFor: %v", err)
	}
	if got != "/pages/home" {
		t.Errorf("URLFor = %q, want %q", got, "/pages/home")
	}
	if r.got.OnlyPath == nil || !*r.got.OnlyPath {
		t.Errorf("router should see OnlyPath defaulted to true, got %v", r.got.OnlyPath)
	}
}

func TestURLForHonorsExplicitOnlyPath(t *testing.T) {
	r := &captureRouter{url: "http://example.com/pages/home"}
	h := New(r)

	if _, err := h.URLFor(Route{Controller: "pages", OnlyPath: route.Bool(false)}); err != nil {
		t.Fatalf("URLFor: %v", err)
	}
	if r.got.OnlyPath == nil || *r.got.OnlyPath {
		t.Errorf("explicit OnlyPath=false must not be overridden, got %v", r.got.OnlyPath)
	}
}

func TestURLForLiteral(t *testing.T) {
	h := New(&captureRouter{})
	got, err := h.URLFor(URL("/about"))
	if err != nil {
		t.Fatalf("URLFor: %v", err)
	}
	if got != "/about" {
		t.Errorf("URLFor = %q, want %q", got, "/about")
	}
}

func TestURLForNilDest(t *testing.T) {
	h := New(&captureRouter{})
	if _, err := h.URLFor(nil); !errors.Is(err, ErrNilDest) {
		t.Errorf("expected ErrNilDest, got %v", err)
	}
}

func TestToLiteral(t *testing.T) {
	h := New(&captureRouter{})
	got := h.To("Home", URL("/"), nil)
	if string(got) != `<a href="/">Home</a>` {
		t.Errorf("To = %q, want %q", got, `<a href="/">Home</a>`)
	}
}

func TestToRoute(t *testing.T) {
	h := New(route.PathRouter{})
	got := h.To("Home", Route{Controller: "pages", Action: "home"}, nil)
	if string(got) != `<a href="/pages/home">Home</a>` {
		t.Errorf("To = %q, want %q", got, `<a href="/pages/home">Home</a>`)
	}
}

func TestToConfirm(t *testing.T) {
	h := New(&captureRouter{})
	attrs := tag.Attrs{"confirm": "Sure?"}

	got := string(h.To("X", URL("/delete"), attrs))

	// The attribute value is escaped by the tag builder; the underlying
	// onclick literal is `return confirm('Sure?');`.
	want := `<a href="/delete" onclick="return confirm(&#39;Sure?&#39;);">X</a>`
	if got != want {
		t.Errorf("To = %q, want %q", got, want)
	}
	if strings.Contains(got, "confirm=") {
		t.Error("confirm must not survive as an attribute")
	}
	if _, ok := attrs["confirm"]; !ok {
		t.Error("caller's attrs map must not be mutated")
	}
}

func TestToComputedHrefWins(t *testing.T) {
	h := New(&captureRouter{})
	got := string(h.To("X", URL("/real"), tag.Attrs{"href": "/stray"}))
	if !strings.Contains(got, `href="/real"`) || strings.Contains(got, "/stray") {
		t.Errorf("computed href must win over caller-supplied href: %q", got)
	}
}

func TestToResolveFailure(t *testing.T) {
	h := New(&captureRouter{err: errors.New("boom")})
	got := string(h.To("X", Route{Controller: "pages"}, tag.Attrs{"href": "/stale"}))
	if strings.Contains(got, "href") {
		t.Errorf("unresolvable destination should render without href: %q", got)
	}
	if !strings.Contains(got, ">X</a>") {
		t.Errorf("name should still render: %q", got)
	}
}

func TestToUnlessCurrent(t *testing.T) {
	cur := route.Current{Controller: "c", Action: "a", ID: "1"}
	h := New(route.PathRouter{})

	t.Run("current page renders escaped name", func(t *testing.T) {
		got := h.ToUnlessCurrent(cur, "Here <now>", route.Options{Controller: "c", Action: "a", ID: "1"}, nil, nil)
		if string(got) != "Here &lt;now&gt;" {
			t.Errorf("got %q, want escaped plain text", got)
		}
	})

	t.Run("other page renders link", func(t *testing.T) {
		got := string(h.ToUnlessCurrent(cur, "Away", route.Options{Controller: "c", Action: "b"}, nil, nil))
		if !strings.HasPrefix(got, "<a ") {
			t.Errorf("got %q, want an anchor", got)
		}
	})

	t.Run("partial options resolve against the current request", func(t *testing.T) {
		onHome := route.Current{Controller: "pages", Action: "home"}
		got := string(h.ToUnlessCurrent(onHome, "About", route.Options{Action: "about"}, nil, nil))
		if got != `<a href="/pages/about">About</a>` {
			t.Errorf("got %q, want %q", got, `<a href="/pages/about">About</a>`)
		}
	})

	t.Run("fallback wins on current page", func(t *testing.T) {
		fb := func(name any, d Dest, attrs tag.Attrs) template.HTML {
			return tag.ContentTag("strong", name, nil)
		}
		got := h.ToUnlessCurrent(cur, "Here", route.Options{Controller: "c", Action: "a", ID: "1"}, nil, fb)
		if string(got) != "<strong>Here</strong>" {
			t.Errorf("got %q, want fallback markup", got)
		}
	})
}

func TestToIfAndToUnless(t *testing.T) {
	h := New(&captureRouter{url: "/x"})

	if got := string(h.ToIf(true, "Go", URL("/x"), nil, nil)); !strings.HasPrefix(got, "<a ") {
		t.Errorf("ToIf(true) = %q, want a link", got)
	}
	if got := string(h.ToIf(false, "Go", URL("/x"), nil, nil)); got != "Go" {
		t.Errorf("ToIf(false) = %q, want plain name", got)
	}
	if got := string(h.ToUnless(true, "Go", URL("/x"), nil, nil)); got != "Go" {
		t.Errorf("ToUnless(true) = %q, want plain name", got)
	}
}

func TestCurrentPage(t *testing.T) {
	h := New(route.PathRouter{})
	cur := route.Current{Controller: "pages", Action: "home"}

	if !h.CurrentPage(cur, route.Options{Controller: "pages", Action: "home"}) {
		t.Error("same target should be current")
	}
	if h.CurrentPage(cur, route.Options{Controller: "pages", Action: "about"}) {
		t.Error("different action should not be current")
	}
}

// TestToStructure parses the generated markup and checks it is a single
// well-formed anchor, not just a string that looks right.
func TestToStructure(t *testing.T) {
	h := New(route.PathRouter{})
	markup := h.To("Posts", Route{
		Controller: "posts",
		Action:     "list",
		Params:     url.Values{"page": {"2"}},
	}, tag.Attrs{"class": "nav", "confirm": "Leave?"})

	nodes, err := xhtml.ParseFragment(strings.NewReader(string(markup)), &xhtml.Node{
		Type:     xhtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected a single element, got %d", len(nodes))
	}

	a := nodes[0]
	if a.Data != "a" {
		t.Fatalf("element = %q, want a", a.Data)
	}

	attrs := map[string]string{}
	for _, at := range a.Attr {
		attrs[at.Key] = at.Val
	}
	if attrs["href"] != "/posts/list?page=2" {
		t.Errorf("href = %q, want %q", attrs["href"], "/posts/list?page=2")
	}
	if attrs["class"] != "nav" {
		t.Errorf("class = %q, want %q", attrs["class"], "nav")
	}
	if attrs["onclick"] != "return confirm('Leave?');" {
		t.Errorf("onclick = %q, want %q", attrs["onclick"], "return confirm('Leave?');")
	}
	if _, ok := attrs["confirm"]; ok {
		t.Error("confirm must not appear as an attribute")
	}
	if a.FirstChild == nil || a.FirstChild.Data != "Posts" {
		t.Error("anchor content should be the name")
	}
}
