package window

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/urfave/negroni"
	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/models"
)

// Handler returns the home page HTTP handler.
func (c *Controller) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", c.handleHome)
	mux.HandleFunc("/search", c.handleSearch)
	mux.HandleFunc("/api/items", c.handleItems)

	recovery := negroni.NewRecovery()
	recovery.Logger = zap.NewStdLog(c.log.Desugar())
	recovery.PrintStack = false

	n := negroni.New(recovery, negroni.HandlerFunc(c.logRequest))
	n.UseHandler(mux)
	return n
}

func (c *Controller) logRequest(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(w, r)

	status := 0
	if rw, ok := w.(negroni.ResponseWriter); ok {
		status = rw.Status()
	}
	c.log.Debugw("http request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"duration", time.Since(start),
	)
}

func (c *Controller) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{
		Title:      c.opts.Title,
		Categories: groupCategories(c.items()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTemplate.Execute(w, data); err != nil {
		c.log.Warnw("failed to render home page", "error", err)
	}
}

func (c *Controller) handleSearch(w http.ResponseWriter, r *http.Request) {
	target := ResolveQuery(r.URL.Query().Get("q"), c.opts.SearchEngine)
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (c *Controller) handleItems(w http.ResponseWriter, r *http.Request) {
	items := c.items()
	if items == nil {
		items = []models.MenuItem{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		c.log.Warnw("failed to encode menu items", "error", err)
	}
}
