package seed

import (
	"math/rand"
	"regexp"
	"strings"
)

var tldPattern = regexp.MustCompile(`\.(com|net|org)$`)

// injector is the single place probability logic lives; entity builders ask it
// per candidate field whether, and how, to corrupt a value. Each decision is
// an independent Bernoulli trial against the category's percentage, so actual
// defect counts vary around percentage% of N.
type injector struct {
	rng *rand.Rand
	cfg ErrorConfig
}

func newInjector(rng *rand.Rand, cfg ErrorConfig) *injector {
	if !cfg.Enabled {
		cfg = ErrorConfig{}
	}
	return &injector{rng: rng, cfg: cfg}
}

func (j *injector) hit(percentage int) bool {
	return percentage > 0 && j.rng.Float64()*100 < float64(percentage)
}

func (j *injector) maybeEmail(email string) string {
	if !j.hit(j.cfg.EmailErrors) {
		return email
	}
	switch j.rng.Intn(5) {
	case 0:
		return strings.Replace(email, "@", "", 1)
	case 1:
		return tldPattern.ReplaceAllString(email, ".xyz")
	case 2:
		return strings.Replace(email, "@", "@@", 1)
	case 3:
		return tldPattern.ReplaceAllString(email, "")
	default:
		return email + "."
	}
}

func (j *injector) hitLocation() bool {
	return j.hit(j.cfg.LocationErrors)
}

func (j *injector) maybePrice(price int64) int64 {
	if !j.hit(j.cfg.PricingErrors) {
		return price
	}
	switch j.rng.Intn(3) {
	case 0:
		return -int64(j.intBetween(1, 100))
	case 1:
		return int64(j.intBetween(10001, 50000))
	default:
		return 0
	}
}

func (j *injector) maybeQuantity(quantity int) int {
	if !j.hit(j.cfg.QuantityErrors) {
		return quantity
	}
	if j.rng.Intn(2) == 0 {
		return 0
	}
	return -j.intBetween(1, 5)
}

// maybeDelivery breaks an order's status/date consistency with one of three
// structural violations, guarded by the status each one applies to.
func (j *injector) maybeDelivery(order *Order) {
	if !j.hit(j.cfg.DeliveryErrors) {
		return
	}
	switch j.rng.Intn(3) {
	case 0:
		if order.Status == StatusDelivered {
			order.DeliveryDate = nil
		}
	case 1:
		if order.Status == StatusPending || order.Status == StatusDelivered {
			order.EstimatedDelivery = nil
		}
	case 2:
		if order.Status == StatusCancelled {
			estimate := order.OrderDate.AddDate(0, 0, j.intBetween(3, 14))
			order.EstimatedDelivery = &estimate
			if j.rng.Float64() < 0.5 {
				delivered := order.OrderDate.AddDate(0, 0, j.intBetween(5, 20))
				order.DeliveryDate = &delivered
			}
		}
	}
}

func (j *injector) intBetween(min, max int) int {
	return j.rng.Intn(max-min+1) + min
}
