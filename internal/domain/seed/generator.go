package seed

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// maxUniqueAttempts bounds the retry-until-unique loops for emails and product
// names. On exhaustion the generator falls back to a deterministic index
// suffix instead of looping; only a collision on the suffixed value itself is
// reported as ErrUniquenessExhausted.
const maxUniqueAttempts = 100

// Generator produces one in-memory dataset per Build call. It holds no state
// across runs; rng and now are injected so tests can pin both.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(rng *rand.Rand, now time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: now}
}

// Build generates rows for all six tables in foreign-key dependency order,
// honoring the cross-table and temporal invariants unless the error-injection
// policy deliberately breaks them.
func (g *Generator) Build(cfg Config) (*Dataset, error) {
	cfg = cfg.WithDefaults(g.now)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	inject := newInjector(g.rng, cfg.ErrorConfig)

	countries := buildCountries(cfg.Countries)
	cities := buildCities(cfg.Cities, countries)

	users, err := g.buildUsers(cfg, countries, cities, inject)
	if err != nil {
		return nil, err
	}

	products, err := g.buildProducts(cfg, inject)
	if err != nil {
		return nil, err
	}

	orders, items := g.buildOrders(cfg, users, products, inject)

	return &Dataset{
		Countries:  countries,
		Cities:     cities,
		Users:      users,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
	}, nil
}

// buildCountries truncates the catalog deterministically rather than sampling,
// so codes are real and never duplicated.
func buildCountries(count int) []Country {
	countries := make([]Country, 0, count)
	for i, entry := range Countries[:count] {
		countries = append(countries, Country{
			ID:        i + 1,
			Name:      entry.Name,
			Code:      entry.Code,
			Continent: entry.Continent,
		})
	}
	return countries
}

// buildCities keeps only catalog cities whose country made the cut; a city
// whose country was excluded is dropped, not remapped, so requesting more
// cities than the selected countries support yields fewer cities.
func buildCities(count int, countries []Country) []City {
	countryByCode := make(map[string]int, len(countries))
	for _, country := range countries {
		countryByCode[country.Code] = country.ID
	}

	cities := make([]City, 0, count)
	for _, entry := range Cities[:count] {
		countryID, ok := countryByCode[entry.CountryCode]
		if !ok {
			continue
		}
		cities = append(cities, City{
			ID:         len(cities) + 1,
			Name:       entry.Name,
			CountryID:  countryID,
			Population: entry.Population,
		})
	}
	return cities
}

func (g *Generator) buildUsers(cfg Config, countries []Country, cities []City, inject *injector) ([]User, error) {
	if cfg.Users == 0 {
		return nil, nil
	}
	if len(cities) == 0 {
		return nil, ErrNoEligibleCities
	}

	users := make([]User, 0, cfg.Users)
	usedEmails := make(map[string]struct{}, cfg.Users)

	for i := 0; i < cfg.Users; i++ {
		firstName := choice(g.rng, firstNames)
		lastName := choice(g.rng, lastNames)

		email, err := g.uniqueEmail(usedEmails, firstName, lastName, i)
		if err != nil {
			return nil, err
		}
		email = inject.maybeEmail(email)
		usedEmails[email] = struct{}{}

		city := choice(g.rng, cities)
		countryID := city.CountryID
		if inject.hitLocation() {
			if otherID, ok := g.otherCountry(countries, city.CountryID); ok {
				countryID = otherID
			}
		}

		users = append(users, User{
			ID:        i + 1,
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			CountryID: countryID,
			CityID:    city.ID,
		})
	}
	return users, nil
}

func (g *Generator) buildProducts(cfg Config, inject *injector) ([]Product, error) {
	products := make([]Product, 0, cfg.Products)
	usedNames := make(map[string]struct{}, cfg.Products)

	for i := 0; i < cfg.Products; i++ {
		name, err := g.uniqueProductName(usedNames, i)
		if err != nil {
			return nil, err
		}

		products = append(products, Product{
			ID:          i + 1,
			Name:        name,
			Description: g.productDescription(name),
			Price:       inject.maybePrice(int64(g.intBetween(5, 2000))),
			Category:    choice(g.rng, ProductCategories),
			Stock:       g.intBetween(0, 500),
		})
	}
	return products, nil
}

func (g *Generator) buildOrders(cfg Config, users []User, products []Product, inject *injector) ([]Order, []OrderItem) {
	orders := make([]Order, 0, cfg.Orders)
	items := make([]OrderItem, 0, cfg.Orders*cfg.OrderItemsPerOrder.Min)

	for i := 0; i < cfg.Orders; i++ {
		orderDate := g.dateBetween(cfg.DateRange.Start, cfg.DateRange.End)
		status, estimated, delivered := g.orderSchedule(orderDate)

		order := Order{
			ID:                i + 1,
			UserID:            choice(g.rng, users).ID,
			Status:            status,
			OrderDate:         orderDate,
			EstimatedDelivery: estimated,
			DeliveryDate:      delivered,
		}
		inject.maybeDelivery(&order)

		numItems := g.intBetween(cfg.OrderItemsPerOrder.Min, cfg.OrderItemsPerOrder.Max)
		selected := make(map[int]struct{}, numItems)
		var total int64

		for j := 0; j < numItems; j++ {
			product := choice(g.rng, products)
			// Keep products distinct within an order; once the pool is
			// exhausted relative to the item count, repeats are allowed.
			for {
				if _, taken := selected[product.ID]; !taken || len(selected) >= len(products) {
					break
				}
				product = choice(g.rng, products)
			}
			selected[product.ID] = struct{}{}

			quantity := inject.maybeQuantity(g.intBetween(1, 5))
			price := inject.maybePrice(product.Price)
			total += price * int64(quantity)

			items = append(items, OrderItem{
				ID:        len(items) + 1,
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  quantity,
				Price:     price,
			})
		}

		order.TotalAmount = total
		orders = append(orders, order)
	}
	return orders, items
}

func (g *Generator) uniqueEmail(used map[string]struct{}, firstName, lastName string, index int) (string, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		email := g.email(firstName, lastName)
		if _, taken := used[email]; !taken {
			return email, nil
		}
	}

	fallback := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(firstName), strings.ToLower(lastName), index, emailDomains[0])
	if _, taken := used[fallback]; taken {
		return "", fmt.Errorf("%w: emails for %s %s", ErrUniquenessExhausted, firstName, lastName)
	}
	return fallback, nil
}

func (g *Generator) email(firstName, lastName string) string {
	number := ""
	if g.rng.Float64() > 0.7 {
		number = strconv.Itoa(g.intBetween(1, 999))
	}
	return strings.ToLower(firstName) + choice(g.rng, emailSeparators) +
		strings.ToLower(lastName) + number + "@" + choice(g.rng, emailDomains)
}

func (g *Generator) uniqueProductName(used map[string]struct{}, index int) (string, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		name := g.productName()
		if _, taken := used[name]; !taken {
			used[name] = struct{}{}
			return name, nil
		}
	}

	fallback := fmt.Sprintf("%s %d", g.productName(), index)
	if _, taken := used[fallback]; taken {
		return "", fmt.Errorf("%w: product names", ErrUniquenessExhausted)
	}
	used[fallback] = struct{}{}
	return fallback, nil
}

func (g *Generator) productName() string {
	name := choice(g.rng, productAdjectives) + " " + choice(g.rng, productNouns)
	if g.rng.Float64() > 0.6 {
		name += " " + choice(g.rng, productModels)
	}
	return name
}

func (g *Generator) productDescription(name string) string {
	return fmt.Sprintf("%s with %s, %s.", name, choice(g.rng, productFeatures), choice(g.rng, productBenefits))
}

func (g *Generator) otherCountry(countries []Country, excludeID int) (int, bool) {
	others := make([]int, 0, len(countries))
	for _, country := range countries {
		if country.ID != excludeID {
			others = append(others, country.ID)
		}
	}
	if len(others) == 0 {
		return 0, false
	}
	return choice(g.rng, others), true
}

func (g *Generator) intBetween(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

func (g *Generator) dateBetween(start, end time.Time) time.Time {
	delta := end.Sub(start)
	if delta <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rng.Int63n(int64(delta))))
}

func choice[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}
