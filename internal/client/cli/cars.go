package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
)

// Sell walks through the sell form, lists the car and shows the catalog.
func (a *App) Sell(ctx context.Context) error {
	var in models.CarInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Company", &in.Company},
		{"Make", &in.Make},
		{"Model", &in.Model},
		{"Variant", &in.Variant},
		{"Price", &in.Price},
		{"Description (optional)", &in.Description},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	photos, err := getSimpleText(a.reader, fmt.Sprintf("Photo URIs, comma separated (optional, up to %d)", models.MaxPhotos), a.out)
	if err != nil {
		return err
	}
	in.Photos = splitList(photos)

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	car, err := a.catalog.Submit(opCtx, in)
	if err != nil {
		return err
	}

	a.printf("Car listed with id %d.\n", car.ID)
	return a.List(ctx)
}

// List prints the catalog, newest first.
func (a *App) List(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	list := a.catalog.List(opCtx)
	if len(list) == 0 {
		a.println("No cars listed yet.")
		return nil
	}
	for _, c := range list {
		a.printf("%d  %d %s %s %s %s  $%s\n", c.ID, c.Year, c.Company, c.Make, c.Model, c.Variant, formatPrice(c.Price))
	}
	return nil
}

// Show prints the details of one car.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.carID(args)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	c, err := a.catalog.Get(opCtx, id)
	if err != nil {
		return err
	}

	a.printf("%s %s %s %s\n", c.Company, c.Make, c.Model, c.Variant)
	a.printf("  Id:          %d\n", c.ID)
	a.printf("  Year:        %d\n", c.Year)
	a.printf("  Price:       $%s\n", formatPrice(c.Price))
	if c.Description != "" {
		a.printf("  Description: %s\n", c.Description)
	}
	if len(c.Photos) == 0 {
		a.println("  Photos:      none")
	}
	for i, p := range c.Photos {
		a.printf("  Photo %d:     %s\n", i+1, p)
	}
	return nil
}

// Offer asks for an offer and optional comments on a listed car.
func (a *App) Offer(ctx context.Context, args []string) error {
	id, err := a.carID(args)
	if err != nil {
		return err
	}
	offer, err := getSimpleText(a.reader, "Your offer", a.out)
	if err != nil {
		return err
	}
	comments, err := getSimpleText(a.reader, "Comments (optional)", a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	o, err := a.catalog.MakeOffer(opCtx, id, offer, comments)
	if err != nil {
		return err
	}

	a.println("Offer Submitted")
	a.printf("Offer: %s\nComments: %s\n", o.Offer, o.Comments)
	return nil
}

func (a *App) carID(args []string) (int64, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := getSimpleText(a.reader, "Enter car id", a.out)
		if err != nil {
			return 0, err
		}
		raw = v
	}
	return parseID(raw, "Please enter a valid car id.")
}

func parseID(raw, msg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("id", msg)
	}
	return id, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
