package seed

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/sqlplayground/playground/internal/domain/seed"
)

// insertBatchSize caps rows per INSERT statement so individual statements stay
// within practical size limits.
const insertBatchSize = 100

// BulkLoader renders generated rows into grouped INSERT statements and drives
// them through the statement executor, one batch at a time. Tables are loaded
// in FK dependency order; the first failing batch aborts the load.
type BulkLoader struct {
	exec StatementExecutor
}

func NewBulkLoader(exec StatementExecutor) *BulkLoader {
	return &BulkLoader{exec: exec}
}

func (l *BulkLoader) Load(ctx context.Context, dataset *domain.Dataset) error {
	countries := make([]string, 0, len(dataset.Countries))
	for _, row := range dataset.Countries {
		countries = append(countries, fmt.Sprintf("(%s, %s, %s)",
			quoteText(row.Name), quoteText(row.Code), quoteText(row.Continent)))
	}
	if err := l.insertBatches(ctx, "countries", "name, code, continent", countries); err != nil {
		return err
	}

	cities := make([]string, 0, len(dataset.Cities))
	for _, row := range dataset.Cities {
		cities = append(cities, fmt.Sprintf("(%s, %d, %d)",
			quoteText(row.Name), row.CountryID, row.Population))
	}
	if err := l.insertBatches(ctx, "cities", "name, country_id, population", cities); err != nil {
		return err
	}

	users := make([]string, 0, len(dataset.Users))
	for _, row := range dataset.Users {
		users = append(users, fmt.Sprintf("(%s, %s, %s, %d, %d)",
			quoteText(row.FirstName), quoteText(row.LastName), quoteText(row.Email),
			row.CountryID, row.CityID))
	}
	if err := l.insertBatches(ctx, "users", "first_name, last_name, email, country_id, city_id", users); err != nil {
		return err
	}

	products := make([]string, 0, len(dataset.Products))
	for _, row := range dataset.Products {
		products = append(products, fmt.Sprintf("(%s, %s, %s, %s, %d)",
			quoteText(row.Name), quoteText(row.Description), moneyLiteral(row.Price),
			quoteText(row.Category), row.Stock))
	}
	if err := l.insertBatches(ctx, "products", "name, description, price, category, stock", products); err != nil {
		return err
	}

	orders := make([]string, 0, len(dataset.Orders))
	for _, row := range dataset.Orders {
		orders = append(orders, fmt.Sprintf("(%d, %s, %s, %s, %s, %s)",
			row.UserID, moneyLiteral(row.TotalAmount), quoteText(string(row.Status)),
			dateLiteral(row.OrderDate), nullableDateLiteral(row.EstimatedDelivery),
			nullableDateLiteral(row.DeliveryDate)))
	}
	if err := l.insertBatches(ctx, "orders", "user_id, total_amount, status, order_date, estimated_delivery, delivery_date", orders); err != nil {
		return err
	}

	items := make([]string, 0, len(dataset.OrderItems))
	for _, row := range dataset.OrderItems {
		items = append(items, fmt.Sprintf("(%d, %d, %d, %s)",
			row.OrderID, row.ProductID, row.Quantity, moneyLiteral(row.Price)))
	}
	return l.insertBatches(ctx, "order_items", "order_id, product_id, quantity, price", items)
}

func (l *BulkLoader) insertBatches(ctx context.Context, table, columns string, values []string) error {
	for start := 0; start < len(values); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(values) {
			end = len(values)
		}

		statement := fmt.Sprintf("INSERT INTO %s (%s) VALUES\n%s",
			table, columns, strings.Join(values[start:end], ",\n"))
		if _, err := l.exec.Execute(ctx, statement); err != nil {
			return &BulkInsertError{Table: table, Batch: start/insertBatchSize + 1, Err: err}
		}
	}
	return nil
}

// quoteText renders a SQL text literal with embedded quotes doubled. The
// executor boundary takes opaque statement strings, so parameter binding is
// not available here.
func quoteText(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func moneyLiteral(value int64) string {
	return strconv.FormatInt(value, 10) + ".00"
}

func dateLiteral(value time.Time) string {
	return "'" + value.Format("2006-01-02") + "'"
}

func nullableDateLiteral(value *time.Time) string {
	if value == nil {
		return "NULL"
	}
	return dateLiteral(*value)
}
