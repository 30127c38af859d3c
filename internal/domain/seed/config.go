package seed

import (
	"fmt"
	"time"
)

// ItemRange bounds how many line items each order receives.
type ItemRange struct {
	Min int
	Max int
}

// DateRange bounds order dates. Both ends are inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ErrorConfig controls deliberate data-quality defects. Each field is a
// percentage in [0, 50] evaluated independently per candidate value. With
// Enabled false every percentage is treated as zero.
type ErrorConfig struct {
	Enabled        bool
	EmailErrors    int
	DeliveryErrors int
	PricingErrors  int
	LocationErrors int
	QuantityErrors int
}

// Config describes one generation run.
type Config struct {
	Countries          int
	Cities             int
	Users              int
	Products           int
	Orders             int
	OrderItemsPerOrder ItemRange
	DateRange          DateRange
	ErrorConfig        ErrorConfig
}

// DefaultConfig returns the configuration used by plain setup and reset runs.
// The date range starts two years before now and ends today, so the generated
// order history always looks current relative to when setup runs.
func DefaultConfig(now time.Time) Config {
	return Config{
		Countries:          25,
		Cities:             50,
		Users:              100,
		Products:           100,
		Orders:             500,
		OrderItemsPerOrder: ItemRange{Min: 1, Max: 5},
		DateRange:          dynamicDateRange(now),
	}
}

func dynamicDateRange(now time.Time) DateRange {
	return DateRange{Start: now.AddDate(-2, 0, 0), End: now}
}

// WithDefaults fills omitted fields and applies catalog clamps. Counts larger
// than the predefined catalogs are clamped down; a date range ending in the
// future is clamped to now.
func (c Config) WithDefaults(now time.Time) Config {
	if c.Countries > len(Countries) {
		c.Countries = len(Countries)
	}
	if c.Cities > len(Cities) {
		c.Cities = len(Cities)
	}
	if c.OrderItemsPerOrder == (ItemRange{}) {
		c.OrderItemsPerOrder = ItemRange{Min: 1, Max: 5}
	}
	if c.DateRange.Start.IsZero() && c.DateRange.End.IsZero() {
		c.DateRange = dynamicDateRange(now)
	} else if c.DateRange.End.IsZero() {
		c.DateRange.End = now
	}
	if c.DateRange.End.After(now) {
		c.DateRange.End = now
	}
	return c
}

// Validate fails fast on malformed input, before any DDL or insert runs.
func (c Config) Validate() error {
	for _, count := range []struct {
		name  string
		value int
	}{
		{"countries", c.Countries},
		{"cities", c.Cities},
		{"users", c.Users},
		{"products", c.Products},
		{"orders", c.Orders},
	} {
		if count.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, count.name, count.value)
		}
	}

	if c.OrderItemsPerOrder.Min < 1 {
		return fmt.Errorf("%w: orderItemsPerOrder.min must be at least 1, got %d", ErrInvalidConfig, c.OrderItemsPerOrder.Min)
	}
	if c.OrderItemsPerOrder.Max < c.OrderItemsPerOrder.Min {
		return fmt.Errorf("%w: orderItemsPerOrder.max %d is below min %d",
			ErrInvalidConfig, c.OrderItemsPerOrder.Max, c.OrderItemsPerOrder.Min)
	}

	if c.DateRange.Start.IsZero() || c.DateRange.End.IsZero() {
		return fmt.Errorf("%w: dateRange is not set", ErrInvalidConfig)
	}
	if c.DateRange.Start.After(c.DateRange.End) {
		return fmt.Errorf("%w: dateRange.start is after dateRange.end", ErrInvalidConfig)
	}

	if c.Users > 0 && (c.Countries == 0 || c.Cities == 0) {
		return fmt.Errorf("%w: users require at least one country and one city", ErrInvalidConfig)
	}
	if c.Orders > 0 && (c.Users == 0 || c.Products == 0) {
		return fmt.Errorf("%w: orders require at least one user and one product", ErrInvalidConfig)
	}

	for _, pct := range []struct {
		name  string
		value int
	}{
		{"emailErrors", c.ErrorConfig.EmailErrors},
		{"deliveryErrors", c.ErrorConfig.DeliveryErrors},
		{"pricingErrors", c.ErrorConfig.PricingErrors},
		{"locationErrors", c.ErrorConfig.LocationErrors},
		{"quantityErrors", c.ErrorConfig.QuantityErrors},
	} {
		if pct.value < 0 || pct.value > 50 {
			return fmt.Errorf("%w: %s must be between 0 and 50, got %d", ErrInvalidConfig, pct.name, pct.value)
		}
	}

	return nil
}
