// Package server exposes the styling pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz
//	GET    /api/presets
//	GET    /api/palettes
//	GET    /api/frames
//	GET    /api/code/themes
//	POST   /api/render        multipart: image + form fields
//	POST   /api/code          JSON CodeRequest
//	POST   /api/tweet         JSON TweetRequest
//	GET    /api/settings      when a settings store is configured
//	PUT    /api/settings
//	DELETE /api/settings
//
// Errors are written as {"code": ..., "message": ...} with the status from
// [styerr.HTTPStatus].
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/integrations/twitter"
	"github.com/younextz/screenshot-styler/pkg/pipeline"
	"github.com/younextz/screenshot-styler/pkg/render/assets"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/tweet"
	"github.com/younextz/screenshot-styler/pkg/settings"
)

// DefaultMaxUploadSize bounds multipart bodies. It leaves room for form
// fields on top of the largest accepted image.
const DefaultMaxUploadSize = styerr.MaxImageSize + 1<<20

// Server holds the handlers' dependencies.
type Server struct {
	runner        *pipeline.Runner
	tweets        *twitter.Client
	palettes      *palette.Registry
	assets        *assets.Provider
	settings      settings.Store
	logger        *log.Logger
	maxUploadSize int64
	reducedMotion bool
	preferRSVG    bool
	tweetWidth    int
}

// Option configures a Server.
type Option func(*Server)

func WithTweetClient(c *twitter.Client) Option { return func(s *Server) { s.tweets = c } }
func WithPalettes(r *palette.Registry) Option  { return func(s *Server) { s.palettes = r } }
func WithAssets(p *assets.Provider) Option     { return func(s *Server) { s.assets = p } }
func WithSettings(st settings.Store) Option    { return func(s *Server) { s.settings = st } }
func WithLogger(l *log.Logger) Option          { return func(s *Server) { s.logger = l } }
func WithMaxUploadSize(n int64) Option         { return func(s *Server) { s.maxUploadSize = n } }
func WithReducedMotion(on bool) Option         { return func(s *Server) { s.reducedMotion = on } }
func WithPreferRSVG(on bool) Option            { return func(s *Server) { s.preferRSVG = on } }

// New returns a Server rendering through runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:        runner,
		logger:        log.Default(),
		maxUploadSize: DefaultMaxUploadSize,
		tweetWidth:    tweet.DefaultWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.palettes == nil {
		s.palettes, _ = palette.NewRegistry()
	}
	return s
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.listPresets)
		r.Get("/palettes", s.listPalettes)
		r.Get("/frames", s.listFrames)
		r.Get("/code/themes", s.listCodeThemes)

		r.Post("/render", s.render)
		r.Post("/code", s.renderCode)
		r.Post("/tweet", s.renderTweet)

		if s.settings != nil {
			r.Get("/settings", s.getSettings)
			r.Put("/settings", s.putSettings)
			r.Delete("/settings", s.deleteSettings)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, styerr.New(styerr.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
