package seed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seed "github.com/sqlplayground/playground/internal/domain/seed"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func validConfig() seed.Config {
	return seed.Config{
		Countries:          5,
		Cities:             10,
		Users:              20,
		Products:           15,
		Orders:             30,
		OrderItemsPerOrder: seed.ItemRange{Min: 1, Max: 3},
		DateRange: seed.DateRange{
			Start: testNow.AddDate(-1, 0, 0),
			End:   testNow,
		},
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := seed.DefaultConfig(testNow)

	assert.Equal(t, 25, cfg.Countries)
	assert.Equal(t, 50, cfg.Cities)
	assert.Equal(t, 100, cfg.Users)
	assert.Equal(t, 100, cfg.Products)
	assert.Equal(t, 500, cfg.Orders)
	assert.Equal(t, seed.ItemRange{Min: 1, Max: 5}, cfg.OrderItemsPerOrder)
	assert.Equal(t, testNow.AddDate(-2, 0, 0), cfg.DateRange.Start)
	assert.Equal(t, testNow, cfg.DateRange.End)
	assert.False(t, cfg.ErrorConfig.Enabled)

	require.NoError(t, cfg.Validate())
}

func TestWithDefaultsClampsCatalogCounts(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Countries = 999
	cfg.Cities = 999

	cfg = cfg.WithDefaults(testNow)

	assert.Equal(t, len(seed.Countries), cfg.Countries)
	assert.Equal(t, len(seed.Cities), cfg.Cities)
}

func TestWithDefaultsFillsOmittedFields(t *testing.T) {
	t.Parallel()

	cfg := seed.Config{Countries: 5, Cities: 5}.WithDefaults(testNow)

	assert.Equal(t, seed.ItemRange{Min: 1, Max: 5}, cfg.OrderItemsPerOrder)
	assert.Equal(t, testNow.AddDate(-2, 0, 0), cfg.DateRange.Start)
	assert.Equal(t, testNow, cfg.DateRange.End)
}

func TestWithDefaultsClampsFutureEndDate(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.DateRange.End = testNow.AddDate(0, 1, 0)

	cfg = cfg.WithDefaults(testNow)

	assert.Equal(t, testNow, cfg.DateRange.End)
}

func TestWithDefaultsFillsMissingEndDate(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.DateRange.End = time.Time{}

	cfg = cfg.WithDefaults(testNow)

	assert.Equal(t, testNow.AddDate(-1, 0, 0), cfg.DateRange.Start)
	assert.Equal(t, testNow, cfg.DateRange.End)
}

func TestValidateRejectsMalformedConfigs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(cfg *seed.Config)
	}{
		{"negative users", func(cfg *seed.Config) { cfg.Users = -1 }},
		{"negative orders", func(cfg *seed.Config) { cfg.Orders = -10 }},
		{"item range min below one", func(cfg *seed.Config) { cfg.OrderItemsPerOrder.Min = 0 }},
		{"item range max below min", func(cfg *seed.Config) {
			cfg.OrderItemsPerOrder = seed.ItemRange{Min: 4, Max: 2}
		}},
		{"date range unset", func(cfg *seed.Config) { cfg.DateRange = seed.DateRange{} }},
		{"date range inverted", func(cfg *seed.Config) {
			cfg.DateRange.Start, cfg.DateRange.End = cfg.DateRange.End.AddDate(0, 0, 1), cfg.DateRange.Start
		}},
		{"users without cities", func(cfg *seed.Config) { cfg.Cities = 0 }},
		{"users without countries", func(cfg *seed.Config) { cfg.Countries = 0 }},
		{"orders without users", func(cfg *seed.Config) { cfg.Users = 0 }},
		{"orders without products", func(cfg *seed.Config) { cfg.Products = 0 }},
		{"email error rate above ceiling", func(cfg *seed.Config) { cfg.ErrorConfig.EmailErrors = 51 }},
		{"negative location error rate", func(cfg *seed.Config) { cfg.ErrorConfig.LocationErrors = -1 }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, seed.ErrInvalidConfig)
		})
	}
}

func TestValidateAllowsEmptyDataset(t *testing.T) {
	t.Parallel()

	cfg := seed.Config{}.WithDefaults(testNow)
	require.NoError(t, cfg.Validate())
}

func TestValidateAllowsMaximumErrorRates(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.ErrorConfig = seed.ErrorConfig{
		Enabled:        true,
		EmailErrors:    50,
		DeliveryErrors: 50,
		PricingErrors:  50,
		LocationErrors: 50,
		QuantityErrors: 50,
	}

	require.NoError(t, cfg.Validate())
}
