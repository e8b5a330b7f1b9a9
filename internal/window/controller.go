// Package window serves the GTools home page and shows it in the browser.
package window

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/models"
)

// ItemSource returns the current menu descriptors.
type ItemSource func() []models.MenuItem

// Options configures the home page server.
type Options struct {
	Listen       string
	Title        string
	SearchEngine string
}

// Controller owns the home page window. The server is started lazily on the
// first ShowWindow and lives until Close.
type Controller struct {
	opts   Options
	items  ItemSource
	opener Opener
	log    *zap.SugaredLogger

	mu  sync.Mutex
	srv *http.Server
	url string
}

// NewController creates a window controller. Nothing listens until ShowWindow.
func NewController(opts Options, items ItemSource, opener Opener, log *zap.SugaredLogger) *Controller {
	return &Controller{
		opts:   opts,
		items:  items,
		opener: opener,
		log:    log,
	}
}

// ShowWindow starts the server if needed and brings the page to the front.
func (c *Controller) ShowWindow() error {
	url, err := c.ensureServer()
	if err != nil {
		return err
	}
	if err := c.opener.Open(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// URL returns the home page address, or "" if the window was never shown.
func (c *Controller) URL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.url
}

// Close shuts the server down. The next ShowWindow starts a new one.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	srv := c.srv
	c.srv = nil
	c.url = ""
	c.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (c *Controller) ensureServer() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.srv != nil {
		return c.url, nil
	}

	ln, err := net.Listen("tcp", c.opts.Listen)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", c.opts.Listen, err)
	}

	srv := &http.Server{
		Handler:           c.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.log.Errorw("home page server stopped", "error", err)
		}
	}()

	c.srv = srv
	c.url = "http://" + ln.Addr().String() + "/"
	c.log.Infow("home page server started", "url", c.url)
	return c.url, nil
}
