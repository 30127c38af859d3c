package seed

import (
	"fmt"
	"time"

	domain "github.com/sqlplayground/playground/internal/domain/seed"
)

// ConfigRequest is the wire form of a generation config, shared by the HTTP
// body and the CLI's config file. Fields are pointers so an omitted field
// keeps its documented default while an explicit zero means zero.
type ConfigRequest struct {
	Countries          *int                `json:"countries,omitempty"`
	Cities             *int                `json:"cities,omitempty"`
	Users              *int                `json:"users,omitempty"`
	Products           *int                `json:"products,omitempty"`
	Orders             *int                `json:"orders,omitempty"`
	OrderItemsPerOrder *ItemRangeRequest   `json:"orderItemsPerOrder,omitempty"`
	DateRange          *DateRangeRequest   `json:"dateRange,omitempty"`
	ErrorConfig        *ErrorConfigRequest `json:"errorConfig,omitempty"`
}

type ItemRangeRequest struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DateRangeRequest carries dates as YYYY-MM-DD strings.
type DateRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ErrorConfigRequest struct {
	Enabled        bool `json:"enabled"`
	EmailErrors    int  `json:"emailErrors"`
	DeliveryErrors int  `json:"deliveryErrors"`
	PricingErrors  int  `json:"pricingErrors"`
	LocationErrors int  `json:"locationErrors"`
	QuantityErrors int  `json:"quantityErrors"`
}

// ToConfig overlays the request onto the default configuration for now.
func (r *ConfigRequest) ToConfig(now time.Time) (domain.Config, error) {
	cfg := domain.DefaultConfig(now)
	if r == nil {
		return cfg, nil
	}

	if r.Countries != nil {
		cfg.Countries = *r.Countries
	}
	if r.Cities != nil {
		cfg.Cities = *r.Cities
	}
	if r.Users != nil {
		cfg.Users = *r.Users
	}
	if r.Products != nil {
		cfg.Products = *r.Products
	}
	if r.Orders != nil {
		cfg.Orders = *r.Orders
	}
	if r.OrderItemsPerOrder != nil {
		cfg.OrderItemsPerOrder = domain.ItemRange{
			Min: r.OrderItemsPerOrder.Min,
			Max: r.OrderItemsPerOrder.Max,
		}
	}
	if r.DateRange != nil {
		start, err := parseDay(r.DateRange.Start)
		if err != nil {
			return domain.Config{}, err
		}
		end, err := parseDay(r.DateRange.End)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.DateRange = domain.DateRange{Start: start, End: end}
	}
	if r.ErrorConfig != nil {
		cfg.ErrorConfig = domain.ErrorConfig{
			Enabled:        r.ErrorConfig.Enabled,
			EmailErrors:    r.ErrorConfig.EmailErrors,
			DeliveryErrors: r.ErrorConfig.DeliveryErrors,
			PricingErrors:  r.ErrorConfig.PricingErrors,
			LocationErrors: r.ErrorConfig.LocationErrors,
			QuantityErrors: r.ErrorConfig.QuantityErrors,
		}
	}

	return cfg, nil
}

func parseDay(value string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", domain.ErrInvalidConfig, value)
	}
	return day, nil
}
