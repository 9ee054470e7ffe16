package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Theatre struct {
	ID            string
	Name          string
	Location      string
	Amenities     []string
	Capacity      int
	StandardPrice decimal.Decimal
	VIPPrice      decimal.Decimal
	ContactInfo   string
	ImageURL      string
	Rating        float64
	TotalScreens  int
}

type TheatreRepository interface {
	GetAll(ctx context.Context) ([]*Theatre, error)
}
