package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/cars"
	"github.com/dmitrijs2005/carmarket/internal/common"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

const MsgOfferRequired = "Please enter your offer."

// CatalogService defines the car listing operations.
//
// Contract:
//   - Submit: validate the sell form, prepend the new car and save the catalog.
//   - List: newest-first snapshot of the catalog.
//   - Get: a single car by id, common.ErrNotFound if there is none.
//   - MakeOffer: acknowledge a purchase offer on an existing car.
type CatalogService interface {
	Submit(ctx context.Context, in models.CarInput) (models.Car, error)
	List(ctx context.Context) []models.Car
	Get(ctx context.Context, id int64) (models.Car, error)
	MakeOffer(ctx context.Context, carID int64, offer, comments string) (models.Offer, error)
}

type catalogService struct {
	catalog *cars.Catalog
	log     logging.Logger
	now     func() time.Time
}

func NewCatalogService(catalog *cars.Catalog, log logging.Logger) CatalogService {
	return &catalogService{catalog: catalog, log: log, now: time.Now}
}

// Submit builds a car from in. On a validation error nothing is stored.
func (s *catalogService) Submit(ctx context.Context, in models.CarInput) (models.Car, error) {
	car, err := models.NewCar(in, s.now())
	if err != nil {
		return models.Car{}, err
	}

	current := s.catalog.Load(ctx)
	s.catalog.Save(ctx, append([]models.Car{car}, current...))

	s.log.Info(ctx, "car listed", "id", car.ID, "company", car.Company, "make", car.Make)
	return car, nil
}

func (s *catalogService) List(ctx context.Context) []models.Car {
	return s.catalog.Load(ctx)
}

func (s *catalogService) Get(ctx context.Context, id int64) (models.Car, error) {
	for _, c := range s.catalog.Load(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Car{}, fmt.Errorf("car %d: %w", id, common.ErrNotFound)
}

// MakeOffer validates and logs an offer. Offers are not stored.
func (s *catalogService) MakeOffer(ctx context.Context, carID int64, offer, comments string) (models.Offer, error) {
	if strings.TrimSpace(offer) == "" {
		return models.Offer{}, models.NewValidationError("offer", MsgOfferRequired)
	}
	if _, err := s.Get(ctx, carID); err != nil {
		return models.Offer{}, err
	}

	o := models.Offer{CarID: carID, Offer: offer, Comments: comments}
	s.log.Info(ctx, "offer submitted", "car_id", carID, "offer", offer)
	return o, nil
}
