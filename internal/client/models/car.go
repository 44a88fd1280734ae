package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
)

// MaxPhotos is the largest number of photo URIs a listing can carry.
const MaxPhotos = 5

const (
	MsgCarRequired = "Please fill all required fields and enter price."
	MsgCarPrice    = "Please enter a valid positive number for price."
)

var MsgCarPhotos = fmt.Sprintf("You can attach at most %d photos.", MaxPhotos)

// Car is a listing of the catalog. Listings are never mutated after creation.
type Car struct {
	ID          int64    `json:"id"`
	Company     string   `json:"company"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Variant     string   `json:"variant"`
	Photos      []string `json:"photos"`
	Year        int      `json:"year"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
}

// CarInput holds the sell form exactly as typed.
type CarInput struct {
	Company     string `validate:"required"`
	Make        string `validate:"required"`
	Model       string `validate:"required"`
	Variant     string `validate:"required"`
	Price       string `validate:"required"`
	Photos      []string
	Description string
}

var validate = validator.New()

// NewCar validates in and builds a listing created at now. The id is the
// creation time in milliseconds and the year is the creation year.
func NewCar(in CarInput, now time.Time) (Car, error) {
	in = in.trimmed()

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Car{}, NewValidationError(strings.ToLower(verrs[0].Field()), MsgCarRequired)
		}
		return Car{}, err
	}
	if len(in.Photos) > MaxPhotos {
		return Car{}, NewValidationError("photos", MsgCarPhotos)
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return Car{}, err
	}

	photos := make([]string, len(in.Photos))
	copy(photos, in.Photos)

	return Car{
		ID:          now.UnixMilli(),
		Company:     in.Company,
		Make:        in.Make,
		Model:       in.Model,
		Variant:     in.Variant,
		Photos:      photos,
		Year:        now.Year(),
		Price:       price,
		Description: in.Description,
	}, nil
}

func (in CarInput) trimmed() CarInput {
	out := in
	out.Company = strings.TrimSpace(in.Company)
	out.Make = strings.TrimSpace(in.Make)
	out.Model = strings.TrimSpace(in.Model)
	out.Variant = strings.TrimSpace(in.Variant)
	out.Price = strings.TrimSpace(in.Price)
	out.Description = strings.TrimSpace(in.Description)
	return out
}

func parsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return 0, NewValidationError("price", MsgCarPrice)
	}
	return p, nil
}
