package interfaces

import (
	"context"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
)

//go:generate mockgen -source=region_cache_interface.go -destination=mocks/mock_region_cache_interface.go -package=mock_interfaces

// IRegionCache keeps the resolved pricing region per visitor session.
//
// Implemented in memory by pricing.SessionCache and in Redis by
// repository.RegionRedisCache.
type IRegionCache interface {
	Get(ctx context.Context, sessionID string) (pricing.Region, bool, error)
	Set(ctx context.Context, sessionID string, r pricing.Region) error
	Delete(ctx context.Context, sessionID string) error
}

var _ IRegionCache = (*pricing.SessionCache)(nil)
