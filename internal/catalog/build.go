package catalog

import (
	"fmt"

	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/shopspring/decimal"
)

// Performance tiers, from the highest threshold down.
const (
	TierUltra  = "Ultra 4K Gaming"
	TierHigh   = "High 1440p Gaming"
	TierMedium = "Medium 1080p Gaming"
	TierBasic  = "Basic"
)

// BuildMessage is the message of every accepted quote.
const BuildMessage = "PC Build created successfully!"

var tiers = []struct {
	min  decimal.Decimal
	name string
}{
	{decimal.NewFromInt(3000), TierUltra},
	{decimal.NewFromInt(2000), TierHigh},
	{decimal.NewFromInt(1000), TierMedium},
}

// Tier classifies a build total.
func Tier(total decimal.Decimal) string {
	for _, t := range tiers {
		if total.GreaterThanOrEqual(t.min) {
			return t.name
		}
	}
	return TierBasic
}

// Total sums the component prices. Prices are taken at their shortest decimal
// representation so 0.1+0.2 is exactly 0.3.
func Total(parts ...schema.Component) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range parts {
		sum = sum.Add(decimal.NewFromFloat(p.Price))
	}
	return sum
}

// Quote prices a four-part build and names its performance tier. Every slot
// must be present; the prices are not checked against the catalog.
func (c *Catalog) Quote(req schema.BuildRequest) (*schema.BuildQuote, error) {
	if req.CPU == nil || req.GPU == nil || req.RAM == nil || req.Storage == nil {
		return nil, common.ErrMissingComponents
	}
	build := schema.Build{CPU: *req.CPU, GPU: *req.GPU, RAM: *req.RAM, Storage: *req.Storage}

	for i, part := range []schema.Component{build.CPU, build.GPU, build.RAM, build.Storage} {
		if part.Price < 0 {
			return nil, fmt.Errorf("%w (%s)", common.ErrNegativePrice, schema.ComponentTypes[i])
		}
	}

	total := Total(build.CPU, build.GPU, build.RAM, build.Storage)
	quote := &schema.BuildQuote{
		Message:     BuildMessage,
		Build:       build,
		TotalPrice:  total.StringFixed(2),
		Performance: Tier(total),
		Timestamp:   c.now().UTC(),
	}

	c.logger.Info("pc build quoted", "total", quote.TotalPrice, "performance", quote.Performance)
	return quote, nil
}
