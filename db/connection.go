package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DBService holds the connection pool of the primary account store.
type DBService struct {
	DB     *sql.DB
	logger *zap.Logger
}

// NewDBService opens the PostgreSQL pool and checks it with a ping.
func NewDBService(ctx context.Context, connStr string, logger *zap.Logger) (*DBService, error) {
	if connStr == "" {
		return nil, errors.New("missing database connection string")
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "could not open db connection")
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not connect to the database")
	}

	return &DBService{DB: db, logger: logger.Named("postgres")}, nil
}

// Health pings the database and reports the outcome as a map.
func (s *DBService) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)
	stats["store"] = "postgres"

	err := s.DB.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	dbStats := s.DB.Stats()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	return stats
}

func (s *DBService) Close() error {
	s.logger.Info("closing database connection")
	return s.DB.Close()
}
