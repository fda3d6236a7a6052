package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sebuszqo/PaymentService/internal/auth"
	"github.com/sebuszqo/PaymentService/internal/finance/interfaces"
	"go.uber.org/zap"
)

// StoreHealth is implemented by the connection of the active account store.
type StoreHealth interface {
	Health(ctx context.Context) map[string]string
}

type Server struct {
	router         http.Handler
	paymentHandler *interfaces.PaymentHandler
	jwtManager     auth.JWTManagerInterface
	store          StoreHealth
	logger         *zap.Logger
}

func NewServer(paymentHandler *interfaces.PaymentHandler, jwtManager auth.JWTManagerInterface, store StoreHealth, logger *zap.Logger) *Server {
	return &Server{
		paymentHandler: paymentHandler,
		jwtManager:     jwtManager,
		store:          store,
		logger:         logger,
		router:         http.NewServeMux(),
	}
}

func loggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger.Debug("request started", zap.String("method", r.Method), zap.String("path", r.URL.Path))

		next.ServeHTTP(w, r)

		logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	interfaces.RespondJSON(w, http.StatusNotFound, map[string]string{"message": "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	interfaces.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	stats := s.store.Health(ctx)
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	interfaces.RespondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	publicRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("POST /api/protected/payments",
		auth.JWTAccessTokenMiddleware(s.jwtManager, s.logger)(http.HandlerFunc(s.paymentHandler.MakePayment)))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = loggingMiddleware(s.logger.Named("http"), mainRouter)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// serve runs httpServer until ctx is cancelled or the listener fails. On
// cancellation it shuts the server down gracefully within shutdownTimeout.
func serve(ctx context.Context, httpServer *http.Server, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
