package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	database "github.com/sebuszqo/PaymentService/db"
	"github.com/sebuszqo/PaymentService/internal/auth"
	"github.com/sebuszqo/PaymentService/internal/config"
	"github.com/sebuszqo/PaymentService/internal/finance/application"
	"github.com/sebuszqo/PaymentService/internal/finance/domain"
	"github.com/sebuszqo/PaymentService/internal/finance/infrastructure"
	"github.com/sebuszqo/PaymentService/internal/finance/interfaces"
	"go.uber.org/zap"
)

type storeConnection interface {
	StoreHealth
	Close() error
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// openAccountStore connects only to the store selected by configuration and
// returns it as primary or backup accordingly.
func openAccountStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (primary, backup domain.AccountRepository, conn storeConnection, err error) {
	if cfg.UseBackupStore() {
		redisService, err := database.NewRedisService(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, infrastructure.NewBackupAccountRepository(redisService.Client), redisService, nil
	}

	dbService, err := database.NewDBService(ctx, cfg.DBConnectionString, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return infrastructure.NewAccountRepository(dbService.DB), nil, dbService, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.EnvFileLoaded {
		logger.Info("no .env file found, continuing with system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	primary, backup, store, err := openAccountStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("could not initialize account store", zap.Error(err))
	}
	defer store.Close()

	jwtManager, err := auth.NewJWTManager(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("could not initialize jwt manager", zap.Error(err))
	}

	paymentService := application.NewPaymentService(primary, backup, cfg.DataStoreType, logger)
	paymentHandler := interfaces.NewPaymentHandler(paymentService, logger, interfaces.RespondJSON, interfaces.RespondError)

	server := NewServer(paymentHandler, jwtManager, store, logger)
	server.RegisterRoutes()

	scheduler, err := StartHealthScheduler(cfg.HealthCheckSchedule, store, logger)
	if err != nil {
		logger.Fatal("scheduler didn't start, stopping the app", zap.Error(err))
	}
	defer scheduler.Stop()

	go func() {
		logger.Info("starting pprof on localhost:6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			logger.Warn("pprof server stopped", zap.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("store", paymentService.StoreName()))
	if err := serve(ctx, httpServer, 30*time.Second); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
