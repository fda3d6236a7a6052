package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartHealthScheduler pings the active account store on the given cron spec
// and logs when it is down. Stop the returned cron on shutdown.
func StartHealthScheduler(spec string, store StoreHealth, logger *zap.Logger) (*cron.Cron, error) {
	logger = logger.Named("health_scheduler")
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stats := store.Health(ctx)
		if stats["status"] != "up" {
			logger.Error("account store is down", zap.String("store", stats["store"]), zap.String("error", stats["error"]))
			return
		}
		logger.Debug("account store is healthy", zap.String("store", stats["store"]))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
