package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	spec := a.appConfig.Catalog.RefreshSpec
	if spec == "" {
		spec = "@every 5m"
	}
	_, err := a.sched.AddFunc(spec, func() {
		if err := a.RefreshCatalogNow(); err != nil {
			zap.S().Errorf("scheduled catalog refresh failed: %s", err.Error())
		}
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// RefreshCatalogNow reloads the product snapshot from the configured source.
// Concurrent calls collapse into a single fetch.
func (a *Application) RefreshCatalogNow() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return a.catalogCache.Refresh(ctx)
}
