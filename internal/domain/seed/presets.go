package seed

import (
	"fmt"
	"time"
)

// LargeConfig is the stress-test preset: same clean data, an order of
// magnitude more of it.
func LargeConfig(now time.Time) Config {
	return Config{
		Countries:          30,
		Cities:             100,
		Users:              1000,
		Products:           500,
		Orders:             2000,
		OrderItemsPerOrder: ItemRange{Min: 1, Max: 8},
		DateRange:          dynamicDateRange(now),
	}
}

// ChallengeConfig returns a preset with error injection enabled, for
// data-quality practice datasets. Known levels are light, medium and heavy.
func ChallengeConfig(level string, now time.Time) (Config, error) {
	switch level {
	case "light":
		return Config{
			Countries:          15,
			Cities:             30,
			Users:              200,
			Products:           150,
			Orders:             400,
			OrderItemsPerOrder: ItemRange{Min: 1, Max: 4},
			DateRange:          dynamicDateRange(now),
			ErrorConfig: ErrorConfig{
				Enabled:        true,
				EmailErrors:    5,
				DeliveryErrors: 3,
				PricingErrors:  2,
				LocationErrors: 4,
				QuantityErrors: 2,
			},
		}, nil
	case "medium":
		return Config{
			Countries:          20,
			Cities:             50,
			Users:              300,
			Products:           200,
			Orders:             800,
			OrderItemsPerOrder: ItemRange{Min: 1, Max: 5},
			DateRange:          dynamicDateRange(now),
			ErrorConfig: ErrorConfig{
				Enabled:        true,
				EmailErrors:    15,
				DeliveryErrors: 10,
				PricingErrors:  8,
				LocationErrors: 12,
				QuantityErrors: 5,
			},
		}, nil
	case "heavy":
		return Config{
			Countries:          25,
			Cities:             50,
			Users:              400,
			Products:           250,
			Orders:             1000,
			OrderItemsPerOrder: ItemRange{Min: 1, Max: 6},
			DateRange:          dynamicDateRange(now),
			ErrorConfig: ErrorConfig{
				Enabled:        true,
				EmailErrors:    25,
				DeliveryErrors: 20,
				PricingErrors:  15,
				LocationErrors: 18,
				QuantityErrors: 10,
			},
		}, nil
	default:
		return Config{}, fmt.Errorf("%w: unknown challenge level %q", ErrInvalidConfig, level)
	}
}

// CustomChallengeConfig scales the medium-sized dataset's error rates off a
// single headline percentage, the way the challenge CLI always has.
func CustomChallengeConfig(rate int, now time.Time) (Config, error) {
	if rate < 0 || rate > 50 {
		return Config{}, fmt.Errorf("%w: challenge error rate must be between 0 and 50, got %d", ErrInvalidConfig, rate)
	}
	return Config{
		Countries:          20,
		Cities:             50,
		Users:              300,
		Products:           200,
		Orders:             800,
		OrderItemsPerOrder: ItemRange{Min: 1, Max: 5},
		DateRange:          dynamicDateRange(now),
		ErrorConfig: ErrorConfig{
			Enabled:        true,
			EmailErrors:    rate,
			DeliveryErrors: scaledRate(rate, 0.7),
			PricingErrors:  scaledRate(rate, 0.5),
			LocationErrors: scaledRate(rate, 0.8),
			QuantityErrors: scaledRate(rate, 0.3),
		},
	}, nil
}

func scaledRate(rate int, factor float64) int {
	scaled := int(float64(rate)*factor + 0.5)
	if scaled < 1 {
		return 1
	}
	return scaled
}
