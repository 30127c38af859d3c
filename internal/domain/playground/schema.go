package playground

// Column describes one column for the schema browser.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsPrimary  bool   `json:"is_primary"`
	IsForeign  bool   `json:"is_foreign"`
	References string `json:"references,omitempty"`
}

// Table describes one playground table for the schema browser.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Schema is the static description of the six seeded tables. It mirrors the
// DDL the lifecycle orchestrator runs; changing one without the other breaks
// the schema browser.
var Schema = []Table{
	{
		Name: "countries",
		Columns: []Column{
			{Name: "id", Type: "SERIAL", IsPrimary: true},
			{Name: "name", Type: "TEXT"},
			{Name: "code", Type: "TEXT"},
			{Name: "continent", Type: "TEXT"},
		},
	},
	{
		Name: "cities",
		Columns: []Column{
			{Name: "id", Type: "SERIAL", IsPrimary: true},
			{Name: "name", Type: "TEXT"},
			{Name: "country_id", Type: "INTEGER", IsForeign: true, References: "countries(id)"},
			{Name: "population", Type: "INTEGER"},
		},
	},
	{
		Name: "users",
		Columns: []Column{
			{Name: "id", Type: "SERIAL", IsPrimary: true},
			{Name: "first_name", Type: "TEXT"},
			{Name: "last_name", Type: "TEXT"},
			{Name: "email", Type: "TEXT"},
			{Name: "country_id", Type: "INTEGER", IsForeign: true, References: "countries(id)"},
			{Name: "city_id", Type: "INTEGER", IsForeign: true, References: "cities(id)"},
		},
	},
	{
		Name: "products",
		Columns: []Column{
			{Name: "id", Type: "SERIAL", IsPrimary: true},
			{Name: "name", Type: "TEXT"},
			{Name: "description", Type: "TEXT"},
			{Name: "price", Type: "DECIMAL(10,2)"},
			{Name: "category", Type: "TEXT"},
			{Name: "stock", Type: "INTEGER"},
		},
	},
	{
		Name: "orders",
		Columns: []Column{
			{Name: "id", Type: "SERIAL", IsPrimary: true},
			{Name: "user_id", Type: "INTEGER", IsForeign: true, References: "users(id)"},
			{Name: "total_amount", Type: "DECIMAL(10,2)"},
			{Name: "status", Type: "TEXT"},
			{Name: "order_date", Type: "DATE"},
			{Name: "estimated_delivery", Type: "DATE"},
			{Name: "delivery_date", Type: "DATE"},
		},
	},
	{
		Name: "order_items",
		Columns: []Column{
			{Name: "id", Type: "SERIAL", IsPrimary: true},
			{Name: "order_id", Type: "INTEGER", IsForeign: true, References: "orders(id)"},
			{Name: "product_id", Type: "INTEGER", IsForeign: true, References: "products(id)"},
			{Name: "quantity", Type: "INTEGER"},
			{Name: "price", Type: "DECIMAL(10,2)"},
		},
	},
}

// TableNames lists the seeded tables in foreign-key dependency order.
func TableNames() []string {
	names := make([]string, 0, len(Schema))
	for _, table := range Schema {
		names = append(names, table.Name)
	}
	return names
}
