package seed

import "context"

// dropStatements tear the schema down in FK-safe reverse dependency order.
var dropStatements = []string{
	"DROP TABLE IF EXISTS order_items CASCADE",
	"DROP TABLE IF EXISTS orders CASCADE",
	"DROP TABLE IF EXISTS products CASCADE",
	"DROP TABLE IF EXISTS users CASCADE",
	"DROP TABLE IF EXISTS cities CASCADE",
	"DROP TABLE IF EXISTS countries CASCADE",
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS countries (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  code TEXT NOT NULL,
  continent TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS cities (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  country_id INTEGER REFERENCES countries(id),
  population INTEGER
)`,
	`CREATE TABLE IF NOT EXISTS users (
  id SERIAL PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT UNIQUE NOT NULL,
  country_id INTEGER REFERENCES countries(id),
  city_id INTEGER REFERENCES cities(id)
)`,
	`CREATE TABLE IF NOT EXISTS products (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price DECIMAL(10, 2) NOT NULL,
  category TEXT,
  stock INTEGER DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS orders (
  id SERIAL PRIMARY KEY,
  user_id INTEGER REFERENCES users(id),
  total_amount DECIMAL(10, 2) NOT NULL,
  status TEXT DEFAULT 'pending',
  order_date DATE DEFAULT CURRENT_DATE,
  estimated_delivery DATE,
  delivery_date DATE
)`,
	`CREATE TABLE IF NOT EXISTS order_items (
  id SERIAL PRIMARY KEY,
  order_id INTEGER REFERENCES orders(id),
  product_id INTEGER REFERENCES products(id),
  quantity INTEGER NOT NULL,
  price DECIMAL(10, 2) NOT NULL
)`,
}

// runQueryFunctionDDL installs the helper the playground editor calls:
// SELECTs come back as a JSONB row array, anything else as a success object,
// and failures are returned as {error, message, detail} instead of raised.
const runQueryFunctionDDL = `CREATE OR REPLACE FUNCTION run_query(query_text TEXT)
RETURNS JSONB
LANGUAGE plpgsql
SECURITY DEFINER
AS $$
DECLARE
  result JSONB;
  rec RECORD;
  results JSONB := '[]'::JSONB;
BEGIN
  IF UPPER(TRIM(query_text)) LIKE 'SELECT%' THEN
    FOR rec IN EXECUTE query_text LOOP
      results := results || to_jsonb(rec);
    END LOOP;
    RETURN results;
  ELSE
    EXECUTE query_text;
    RETURN '{"success": true, "message": "Query executed successfully"}'::JSONB;
  END IF;
EXCEPTION WHEN OTHERS THEN
  RETURN json_build_object(
    'error', true,
    'message', SQLERRM,
    'detail', SQLSTATE
  )::JSONB;
END;
$$`

// EnsureRunQueryFunction installs or refreshes the run_query helper. Setup
// runs it as a phase; the CLI exposes it standalone as "fix".
func EnsureRunQueryFunction(ctx context.Context, exec StatementExecutor) error {
	_, err := exec.Execute(ctx, runQueryFunctionDDL)
	return err
}
