// Package cars persists the car catalog: the newest-first list of listings
// kept as one JSON document under Key.
package cars

import (
	"context"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/document"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

const Key = "@cars_list"

// Catalog never reports errors to its callers. Failures are logged, a
// failed Load yields an empty catalog and a failed Save is dropped.
type Catalog struct {
	doc *document.Document[models.Car]
	log logging.Logger
}

func NewCatalog(store kv.Repository, log logging.Logger) *Catalog {
	return &Catalog{doc: document.New[models.Car](store, Key), log: log}
}

// Load returns the stored catalog. It is never nil.
func (c *Catalog) Load(ctx context.Context) []models.Car {
	cars, err := c.doc.Read(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to load cars", "key", c.doc.Key(), logging.Err(err))
		return []models.Car{}
	}
	if cars == nil {
		return []models.Car{}
	}
	for i := range cars {
		if cars[i].Photos == nil {
			cars[i].Photos = []string{}
		}
	}
	return cars
}

// Save replaces the whole stored catalog with cars.
func (c *Catalog) Save(ctx context.Context, cars []models.Car) {
	if err := c.doc.Write(ctx, cars); err != nil {
		c.log.Error(ctx, "failed to save cars", "key", c.doc.Key(), "count", len(cars), logging.Err(err))
		return
	}
	c.log.Debug(ctx, "cars saved", "key", c.doc.Key(), "count", len(cars))
}
