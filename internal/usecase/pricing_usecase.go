package usecase

import (
	"context"
	"strings"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/metrics"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPricingUseCase resolves what a visitor pays.
type IPricingUseCase interface {
	ResolveRegion(ctx context.Context, sessionID, countryCode string, override bool) (pricing.Region, error)
	ListTiers() []pricing.Tier
}

type PricingUseCase struct {
	cache interfaces.IRegionCache
	log   *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

// NewPricingUseCase accepts a nil cache, in which case every call resolves directly.
func NewPricingUseCase(cache interfaces.IRegionCache) *PricingUseCase {
	return &PricingUseCase{cache: cache, log: logging.Named("pricing.usecase")}
}

// ResolveRegion returns the session's cached region when there is one and the
// caller did not pass an explicit country override. Cache failures never fail
// the call.
func (u *PricingUseCase) ResolveRegion(ctx context.Context, sessionID, countryCode string, override bool) (pricing.Region, error) {
	sessionID = strings.TrimSpace(sessionID)
	useCache := u.cache != nil && sessionID != ""

	if useCache && !override {
		r, ok, err := u.cache.Get(ctx, sessionID)
		switch {
		case err != nil:
			u.log.Warn("region cache get failed", zap.String("session_id", sessionID), zap.Error(err))
		case ok:
			metrics.RegionResolutions.WithLabelValues(string(r.Tier), "hit").Inc()
			return r, nil
		}
	}

	r := pricing.Resolve(countryCode)
	metrics.RegionResolutions.WithLabelValues(string(r.Tier), "miss").Inc()

	if useCache {
		if err := u.cache.Set(ctx, sessionID, r); err != nil {
			u.log.Warn("region cache set failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	}
	return r, nil
}

func (u *PricingUseCase) ListTiers() []pricing.Tier {
	return pricing.Tiers()
}
