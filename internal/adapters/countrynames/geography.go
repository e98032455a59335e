// Package countrynames resolves country names offline. It backs continent
// resolution when no network geocoder may be used.
package countrynames

import (
	"context"
	"strings"
	"time"

	"github.com/biter777/countries"

	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const providerName = "countrynames"

// Geography maps country names, common variants and ISO 3166-1 alpha-2 or
// alpha-3 codes to alpha-2 codes. It holds no mutable state.
type Geography struct {
	log logger.Logger
}

// New creates a Geography.
func New() *Geography {
	return &Geography{log: logger.Named(providerName)}
}

// CountryCode returns the alpha-2 code for name. Matching ignores case,
// punctuation and anything from an opening parenthesis on. The context is
// only checked up front; lookups are in memory.
func (g *Geography) CountryCode(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	start := time.Now()
	code := countries.ByName(name)
	outcome := "ok"
	if !code.IsValid() {
		outcome = "empty"
	}
	metrics.RecordProviderRequest(providerName, outcome, time.Since(start))

	if outcome != "ok" {
		g.log.Debug(ctx, "country name not recognised", logger.String("name", name))
		return "", ErrUnknownCountry
	}
	return code.Alpha2(), nil
}
