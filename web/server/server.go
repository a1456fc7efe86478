package server

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	actx "go.hackfix.me/agrodiag/app/context"
	"go.hackfix.me/agrodiag/web/server/handler"
	"go.hackfix.me/agrodiag/web/server/middleware"
	"go.hackfix.me/agrodiag/web/server/page"
)

// Server is a wrapper around http.Server with some custom behavior.
type Server struct {
	*http.Server
	logger *slog.Logger
}

// Route is an HTTP endpoint served by the web server.
type Route struct {
	// Method is the HTTP method the route responds to. An empty value matches
	// all methods.
	Method      string
	Pattern     string
	Description string
	Handler     http.Handler
}

// New returns a new web Server instance that will listen on addr.
func New(appCtx *actx.Context, addr string) *Server {
	logger := appCtx.Logger.With("component", "web-server")
	return &Server{
		Server: &http.Server{
			Handler:           SetupHandlers(logger),
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
	}
}

// ListenAndServe starts the HTTP server. It stores the actual listen address,
// which is convenient when the address is dynamically determined by the system
// (e.g. ':0').
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	s.Addr = ln.Addr().String()
	s.logger.Info("started listener", "address", s.Addr)

	//nolint:wrapcheck // This is fine.
	return s.Serve(ln)
}

// Routes returns the routes served by the web server.
func Routes(logger *slog.Logger) []Route {
	pages := page.NewHandler(logger)
	htmlPipeline := handler.NewPipeline().
		Serialize(handler.HTML()).
		ProcessResponse(handler.ContentLength, handler.NoCache)

	return []Route{
		{
			Pattern:     "/{$}",
			Description: "Home page linking back to the frontend application.",
			Handler:     handler.Handle(pages.HomeGet, htmlPipeline),
		},
	}
}

// SetupHandlers configures the server HTTP handlers.
func SetupHandlers(logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	for _, route := range Routes(logger) {
		pattern := route.Pattern
		if route.Method != "" {
			pattern = route.Method + " " + pattern
		}
		mux.Handle(pattern, route.Handler)
	}

	return middleware.Chain(mux, middleware.Logger(logger), middleware.Recover(logger))
}
