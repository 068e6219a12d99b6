// link/funcs.go
package link

import (
	"html/template"

	"github.com/dalemusser/syrup/route"
	"github.com/dalemusser/syrup/text"
)

// FuncMap returns template helpers bound to h, for merging into a view
// engine's function map. Helpers that need the current request's routing
// context take a route.Current, which handlers put into template data via
// route.FromContext (populated by the route.WithCurrent middleware).
func (h *Helper) FuncMap() template.FuncMap {
	return template.FuncMap{
		// {{ urlFor "posts" "show" "7" }} → "/posts/show/7"
		"urlFor": func(controller, action, id string) (string, error) {
			return h.URLFor(Route{Controller: controller, Action: action, ID: id})
		},
		// {{ linkTo "Home" "/" }}
		"linkTo": func(name, href string) template.HTML {
			return h.To(name, URL(href), nil)
		},
		// {{ linkToRoute "All posts" "posts" "" "" }}
		"linkToRoute": func(name, controller, action, id string) template.HTML {
			return h.To(name, Route{Controller: controller, Action: action, ID: id}, nil)
		},
		// {{ linkToImage "logo" "/" }}
		"linkToImage": func(src, href string) template.HTML {
			return h.ToImage(src, URL(href), nil)
		},
		// {{ linkToUnlessCurrent .Current "About" "pages" "about" "" }}
		"linkToUnlessCurrent": func(cur route.Current, name, controller, action, id string) template.HTML {
			opts := route.Options{Controller: controller, Action: action, ID: id}
			return h.ToUnlessCurrent(cur, name, opts, nil, nil)
		},
		// {{ mailTo "help@example.com" }}
		"mailTo": func(address string) template.HTML {
			return h.MailTo(address, "", nil)
		},
		// {{ if currentPage .Current "pages" "home" "" }}class="active"{{ end }}
		"currentPage": func(cur route.Current, controller, action, id string) bool {
			return h.CurrentPage(cur, route.Options{Controller: controller, Action: action, ID: id})
		},
		// {{ urlFor "posts" "show" (parameterize .Post.Title) }}
		"parameterize": text.Parameterize,
	}
}
