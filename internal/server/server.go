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

	"github.com/osse101/StarSailors_Go/internal/annotation"
	"github.com/osse101/StarSailors_Go/internal/auth"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/database"
	"github.com/osse101/StarSailors_Go/internal/deployment"
	"github.com/osse101/StarSailors_Go/internal/handler"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/metrics"
	"github.com/osse101/StarSailors_Go/internal/progression"
	"github.com/osse101/StarSailors_Go/internal/repository"
	"github.com/osse101/StarSailors_Go/internal/storage"
)

// Options configure the HTTP listener and its middleware
type Options struct {
	Port            int
	Version         string
	JWTSecret       string
	TrustedProxies  []string
	MaxRequestBytes int64
}

// Dependencies are what the API routes are served from
type Dependencies struct {
	DB              database.Pool
	Anomalies       repository.Anomaly
	URLs            storage.URLBuilder
	Progression     progression.Service
	Classifications classification.Service
	Annotations     annotation.Service
	Deployments     deployment.Service
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
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree with its middleware stack
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(auth.Middleware([]byte(opts.JWTSecret), func(req *http.Request) {
		detector.RecordFailedAuth(extractIP(req, opts.TrustedProxies))
	}))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(map[string]handler.HealthChecker{
		"database": handler.PoolChecker{Pool: deps.DB},
	}))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	anomalyHandlers := handler.NewAnomalyHandlers(deps.Anomalies, deps.URLs)
	classificationHandlers := handler.NewClassificationHandlers(deps.Classifications, deps.Progression)
	annotationHandlers := handler.NewAnnotationHandlers(deps.Annotations, deps.Progression)
	progressionHandlers := handler.NewProgressionHandlers(deps.Progression)
	deploymentHandlers := handler.NewDeploymentHandlers(deps.Deployments, deps.URLs)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/anomalies/{id}", anomalyHandlers.HandleGetAnomaly())

		r.Route("/classifications", func(r chi.Router) {
			r.Get("/", classificationHandlers.HandleList())
			r.Post("/", classificationHandlers.HandleSubmit())
			r.Get("/form", classificationHandlers.HandleGetForm())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", classificationHandlers.HandleGet())
				r.Post("/vote", classificationHandlers.HandleVote())
				r.Get("/comments", classificationHandlers.HandleListComments())
				r.Post("/comments", classificationHandlers.HandleAddComment())
			})
		})

		r.Route("/annotations", func(r chi.Router) {
			r.Post("/", annotationHandlers.HandleSave())
			r.Post("/submit", annotationHandlers.HandleSubmit())
			r.Post("/preview", annotationHandlers.HandlePreview())
		})

		r.Get("/minerals/deposits", annotationHandlers.HandleListDeposits())

		r.Route("/progression", func(r chi.Router) {
			r.Get("/workflows", progressionHandlers.HandleGetWorkflows())
			r.Get("/catalog", progressionHandlers.HandleGetCatalog())
			r.Post("/unlock", progressionHandlers.HandleUnlock())
			r.Get("/missions/{mission}", progressionHandlers.HandleGetMission())
			r.Post("/missions/{mission}/complete", progressionHandlers.HandleCompleteMission())
		})

		r.Route("/deploy/telescope", func(r chi.Router) {
			r.Post("/", deploymentHandlers.HandleDeploy())
			r.Get("/anomalies", deploymentHandlers.HandleListAnomalies())
			r.Get("/status", deploymentHandlers.HandleStatus())
			r.Get("/skills", deploymentHandlers.HandleSkillProgress())
		})
		r.Post("/research", deploymentHandlers.HandleResearch())
	})

	// Swagger documentation
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
