package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alkapone312/shared-checklist/internal/runtime"
	"github.com/alkapone312/shared-checklist/internal/server/http/controllers"
	checklistsvc "github.com/alkapone312/shared-checklist/internal/services/checklist"
	logpkg "github.com/alkapone312/shared-checklist/pkg/log"
)

// Server hosts the JSON sync API over net/http.
type Server struct {
	rt     *runtime.Runtime
	svc    *checklistsvc.Service
	logger logpkg.Logger
	srv    *http.Server
	lis    net.Listener
}

// New builds a server with its own service instance.
func New(rt *runtime.Runtime, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	svc := checklistsvc.NewWithLogger(rt, logger.With(logpkg.Component("checklist")))
	return NewWithService(rt, svc, logger)
}

// NewWithService builds a server around a shared service instance.
func NewWithService(rt *runtime.Runtime, svc *checklistsvc.Service, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	s := &Server{rt: rt, svc: svc, logger: logger.With(logpkg.Component("http"))}

	mux := http.NewServeMux()
	controllers.NewGeneralController(rt).RegisterRoutes(mux)
	controllers.NewRoomsController(svc).RegisterRoutes(mux)
	controllers.NewEventsController(svc).RegisterRoutes(mux)

	s.srv = &http.Server{Handler: cors(s.requestLog(mux))}
	return s
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response code for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLog tags each request with a generated id and logs its outcome.
// Query strings are deliberately excluded: they carry room tokens.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			logpkg.Str("request_id", requestID),
			logpkg.Str("method", r.Method),
			logpkg.Str("path", r.URL.Path),
			logpkg.Int("status", rec.status),
			logpkg.Dur("dur", time.Since(start)),
		)
	})
}
