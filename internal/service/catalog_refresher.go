package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CatalogRefresher periodically reloads the HSN catalog so rows added by
// the seeder or by other instances become searchable without a restart.
type CatalogRefresher struct {
	hsnService HSNService
	interval   time.Duration
	log        *zap.Logger
}

// NewCatalogRefresher creates a new CatalogRefresher.
func NewCatalogRefresher(hsnService HSNService, interval time.Duration, log *zap.Logger) *CatalogRefresher {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogRefresher{
		hsnService: hsnService,
		interval:   interval,
		log:        log.Named("hsn.refresher"),
	}
}

// Start loads the catalog once, then reloads it every interval until ctx is
// canceled. A non-positive interval loads once and returns.
func (r *CatalogRefresher) Start(ctx context.Context) {
	r.reload(ctx)
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("started", zap.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.log.Info("shutdown complete")
			return
		case <-ticker.C:
			r.reload(ctx)
		}
	}
}

func (r *CatalogRefresher) reload(ctx context.Context) {
	if err := r.hsnService.Reload(ctx); err != nil && ctx.Err() == nil {
		r.log.Error("reloading hsn catalog", zap.Error(err))
	}
}
