// cmd/syrupdemo/main.go
//
// syrupdemo is a small server that renders a page through html/template
// using the link helpers, wired the way a real app would: config, zap
// logging, chi middleware, and Prometheus metrics.
package main

import (
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/syrup/config"
	"github.com/dalemusser/syrup/link"
	"github.com/dalemusser/syrup/logging"
	"github.com/dalemusser/syrup/metrics"
	"github.com/dalemusser/syrup/route"
	"github.com/dalemusser/syrup/router"
)

const pageTmpl = `<!doctype html>
<html>
<head><title>syrup demo</title></head>
<body>
<nav>
  {{ linkToUnlessCurrent .Current "Home" "pages" "home" "" }} |
  {{ linkToUnlessCurrent .Current "Posts" "posts" "" "" }} |
  {{ linkToUnlessCurrent .Current "About" "pages" "about" "" }}
</nav>
<h1>{{ .Title }}</h1>
<p>{{ linkToImage "logo" "/" }}</p>
<p>Questions? {{ mailTo "help@example.com" }}</p>
</body>
</html>
`

func main() {
	boot := logging.MustNew("info", "dev")

	cfg, err := config.Load(boot)
	if err != nil {
		boot.Error("config load failed", zap.Error(err))
		os.Exit(1)
	}

	logger := logging.MustNew(cfg.LogLevel, cfg.Env)
	defer func() { _ = logger.Sync() }()

	metrics.RegisterDefault(logger)

	helper := link.NewFromConfig(nil, cfg, logger)
	page := template.Must(template.New("page").Funcs(helper.FuncMap()).Parse(pageTmpl))

	render := func(w http.ResponseWriter, r *http.Request, title string) {
		cur, _ := route.FromContext(r.Context())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, map[string]any{"Current": cur, "Title": title}); err != nil {
			logger.Error("template render failed", zap.Error(err))
		}
	}

	r := router.New(logger)

	r.Handle("/metrics", metrics.Handler())

	r.With(route.Routed("pages", "home")).Get("/", func(w http.ResponseWriter, req *http.Request) {
		render(w, req, "Home")
	})

	catchAll := func(w http.ResponseWriter, req *http.Request) {
		cur, _ := route.FromContext(req.Context())
		render(w, req, cur.Controller+"#"+cur.Action)
	}
	r.Group(func(r chi.Router) {
		r.Use(route.WithCurrent)
		r.Get("/{controller}", catchAll)
		r.Get("/{controller}/{action}", catchAll)
		r.Get("/{controller}/{action}/{id}", catchAll)
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
