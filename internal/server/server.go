package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/IconIdle_Go/internal/handler"
	"github.com/osse101/IconIdle_Go/internal/logger"
	"github.com/osse101/IconIdle_Go/internal/metrics"
	"github.com/osse101/IconIdle_Go/internal/sse"
)

// Options configures the listener and the security middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	// MaxRequestsPerWindow is the per-IP budget of the rate limiter. Zero uses the default.
	MaxRequestsPerWindow int
}

// Dependencies are the services the routes call into
type Dependencies struct {
	Sessions handler.Sessions
	Catalog  handler.IconCatalog
	Store    handler.Pinger
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree with its middleware stack
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetectorWithLimit(DetectorWindow, opts.MaxRequestsPerWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	if deps.Hub != nil {
		r.Get(EventsPath, sse.Handler(deps.Hub))
	}

	catalogHandlers := handler.NewCatalogHandlers(deps.Catalog)
	players := handler.NewPlayerHandlers(deps.Sessions, deps.Catalog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/icons", func(r chi.Router) {
			r.Get("/", catalogHandlers.HandleListIcons())
			r.Get("/sample", catalogHandlers.HandleSampleIcons())
			r.Get("/random", catalogHandlers.HandleRandomIcon())
			r.Get("/{"+handler.ParamIconID+"}", catalogHandlers.HandleGetIcon())
		})

		r.Route("/players/{"+handler.ParamPlayerID+"}", func(r chi.Router) {
			r.Delete("/", players.HandleResetPlayer())

			r.Post("/craft", players.HandleCraft())
			r.Get("/recipes", players.HandleListRecipes())
			r.Get("/recipes/discovered", players.HandleListDiscovered())
			r.Get("/inventory", players.HandleGetInventory())

			r.Route("/games", func(r chi.Router) {
				r.Get("/", players.HandleListGames())
				r.Post("/", players.HandleStartGame())
				r.Get("/plays", players.HandleGetPlays())
				r.Route("/{"+handler.ParamGameID+"}", func(r chi.Router) {
					r.Get("/", players.HandleGetGame())
					r.Post("/input", players.HandleGameInput())
					r.Post("/tick", players.HandleGameTick())
					r.Post("/stop", players.HandleStopGame())
				})
			})

			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", players.HandleListPendingRewards())
				r.Post("/{"+handler.ParamRewardID+"}/claim", players.HandleClaimReward())
				r.Delete("/{"+handler.ParamRewardID+"}", players.HandleAbandonReward())
			})

			r.Get("/hidden", players.HandleHiddenStatus())
			r.Post("/device", players.HandleReportDevice())
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
