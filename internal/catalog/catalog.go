// Package catalog serves the read-only storefront data of the Catalog
// Service and computes build quotes. The data lives in memory and is never
// written.
package catalog

import (
	"strings"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// Catalog holds the product list and the component table.
type Catalog struct {
	products   []schema.Product
	components map[schema.ComponentType][]schema.Component
	logger     logging.Logger
	now        func() time.Time
}

// New returns a Catalog loaded with the storefront fixtures.
func New(logger logging.Logger) *Catalog {
	return NewWith(defaultProducts(), defaultComponents(), logger)
}

// NewWith returns a Catalog over the given data.
func NewWith(products []schema.Product, components map[schema.ComponentType][]schema.Component, logger logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Catalog{
		products:   products,
		components: components,
		logger:     logger,
		now:        time.Now,
	}
}

// Products returns every product, or only those whose category equals
// category ignoring case. An empty category means no filter.
func (c *Catalog) Products(category string) []schema.Product {
	out := make([]schema.Product, 0, len(c.products))
	for _, p := range c.products {
		if category == "" || strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Product looks a product up by id.
func (c *Catalog) Product(id int) (schema.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return schema.Product{}, common.ErrProductNotFound
}

// Components returns the whole component table keyed by type.
func (c *Catalog) Components() map[schema.ComponentType][]schema.Component {
	out := make(map[schema.ComponentType][]schema.Component, len(c.components))
	for k, v := range c.components {
		out[k] = append([]schema.Component(nil), v...)
	}
	return out
}

// ComponentsOf returns the components of one type, matched ignoring case.
func (c *Catalog) ComponentsOf(kind string) ([]schema.Component, error) {
	list, ok := c.components[schema.ComponentType(strings.ToLower(kind))]
	if !ok {
		return nil, common.ErrComponentTypeNotFound
	}
	return append([]schema.Component(nil), list...), nil
}
