package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/handler"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/metrics"
	"github.com/special-brownies/booster-pack/internal/pack"
	"github.com/special-brownies/booster-pack/internal/sse"
)

// Options configures the HTTP surface.
type Options struct {
	Port            int
	AllowedOrigins  []string
	TrustedProxies  []string
	MaxRequestBytes int64
}

// Services are the collaborators the routes are bound to.
type Services struct {
	Pack      pack.Service
	Binder    binder.Service
	Sets      handler.SetCatalogReader
	Cards     handler.CardMetadataReader
	Readiness handler.HealthChecker
	// Events, when set, serves the binder event stream at /events.
	Events    *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware chain and every route, including the
// camelCase aliases older clients call.
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.AllowedOrigins))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewSuspiciousActivityDetector()))
	if opts.MaxRequestBytes > 0 {
		r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	}
	r.Use(Compression)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/health", handler.HandleHealthz())
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Readiness))

	r.Handle("/metrics", promhttp.Handler())

	packHandler := handler.NewPackHandler(svc.Pack)
	r.Post("/open-pack", packHandler.HandleOpenPack)
	r.Post("/openPack", packHandler.HandleOpenPack)

	binderHandler := handler.NewBinderHandler(svc.Binder)
	r.Post("/add-cards-to-binder", binderHandler.HandleAddCards)
	r.Post("/addCardsToBinder", binderHandler.HandleAddCards)
	r.Get("/collection-progress", binderHandler.HandleCollectionProgress)
	r.Get("/getCollectionProgress", binderHandler.HandleCollectionProgress)
	r.Get("/global-progress", binderHandler.HandleGlobalProgress)
	r.Get("/getGlobalProgress", binderHandler.HandleGlobalProgress)
	r.Get("/unlocked-sets", binderHandler.HandleUnlockedSets)
	r.Get("/getUnlockedSets", binderHandler.HandleUnlockedSets)
	r.Get("/binder-state", binderHandler.HandleBinderState)
	r.Get("/getBinderState", binderHandler.HandleBinderState)

	catalogHandler := handler.NewCatalogHandler(svc.Sets, svc.Cards)
	r.Get("/set-catalog", catalogHandler.HandleSetCatalog)
	r.Get("/getSetCatalog", catalogHandler.HandleSetCatalog)
	r.Get("/card-metadata", catalogHandler.HandleCardMetadata)
	r.Get("/cardMetadata", catalogHandler.HandleCardMetadata)
	r.Get("/cards/{"+handler.URLParamSetID+"}/{"+handler.URLParamCardID+"}.png", catalogHandler.HandleCardImage)

	if svc.Events != nil {
		r.Get("/events", sse.Handler(svc.Events))
	}

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) ||
			strings.EqualFold(k, HeaderAuthorization) ||
			strings.EqualFold(k, HeaderCookie) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Every request gets an id so handler logs correlate, even unlogged probes.
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start listens on the configured address and serves until Stop. It returns
// nil after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	slog.Default().Info(LogMsgServerStarting, "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
