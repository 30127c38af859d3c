package playground

// Exercise is one practice query shown in the playground UI.
type Exercise struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Query       string `json:"query"`
}

var Exercises = []Exercise{
	{
		ID:          "select-all-users",
		Title:       "Get all users",
		Description: "Retrieve all columns for all users in the database.",
		Difficulty:  "beginner",
		Query:       "SELECT * FROM users",
	},
	{
		ID:          "select-specific-columns",
		Title:       "Select specific user columns",
		Description: "Retrieve only first name, last name, and email for all users.",
		Difficulty:  "beginner",
		Query:       "SELECT first_name, last_name, email FROM users",
	},
	{
		ID:          "filter-with-where",
		Title:       "Filter with WHERE clause",
		Description: "Find all products with price greater than $50.",
		Difficulty:  "beginner",
		Query:       "SELECT * FROM products WHERE price > 50",
	},
	{
		ID:          "simple-join",
		Title:       "Join two tables",
		Description: "Get all orders with the corresponding user information.",
		Difficulty:  "intermediate",
		Query: `SELECT o.id, o.total_amount, o.status, u.first_name, u.last_name, u.email
FROM orders o
JOIN users u ON o.user_id = u.id`,
	},
	{
		ID:          "multi-table-join",
		Title:       "Multi-table join",
		Description: "Get order details with product information.",
		Difficulty:  "intermediate",
		Query: `SELECT o.id as order_id, u.first_name, u.last_name,
       p.name as product_name, oi.quantity, oi.price
FROM orders o
JOIN users u ON o.user_id = u.id
JOIN order_items oi ON oi.order_id = o.id
JOIN products p ON oi.product_id = p.id`,
	},
	{
		ID:          "group-by-aggregate",
		Title:       "Group By with aggregates",
		Description: "Calculate total sales by country.",
		Difficulty:  "intermediate",
		Query: `SELECT c.name as country, SUM(o.total_amount) as total_sales
FROM orders o
JOIN users u ON o.user_id = u.id
JOIN countries c ON u.country_id = c.id
GROUP BY c.name
ORDER BY total_sales DESC`,
	},
	{
		ID:          "having-clause",
		Title:       "HAVING clause",
		Description: "Find countries with total sales over $1000.",
		Difficulty:  "intermediate",
		Query: `SELECT c.name as country, SUM(o.total_amount) as total_sales
FROM orders o
JOIN users u ON o.user_id = u.id
JOIN countries c ON u.country_id = c.id
GROUP BY c.name
HAVING SUM(o.total_amount) > 1000
ORDER BY total_sales DESC`,
	},
	{
		ID:          "date-functions",
		Title:       "Date Functions",
		Description: "Analyze orders by month and year.",
		Difficulty:  "intermediate",
		Query: `SELECT
  EXTRACT(YEAR FROM order_date) as year,
  EXTRACT(MONTH FROM order_date) as month,
  COUNT(*) as order_count,
  SUM(total_amount) as total_sales
FROM orders
GROUP BY year, month
ORDER BY year, month`,
	},
	{
		ID:          "self-join",
		Title:       "Self Join",
		Description: "Find cities in the same country.",
		Difficulty:  "intermediate",
		Query: `SELECT
  c1.name as city1,
  c2.name as city2,
  co.name as country
FROM cities c1
JOIN cities c2 ON c1.country_id = c2.country_id AND c1.id < c2.id
JOIN countries co ON c1.country_id = co.id
ORDER BY country, city1, city2`,
	},
	{
		ID:          "subquery",
		Title:       "Subquery",
		Description: "Find users who have placed orders with a total amount greater than the average order amount.",
		Difficulty:  "advanced",
		Query: `SELECT DISTINCT u.first_name, u.last_name, u.email
FROM users u
JOIN orders o ON u.id = o.user_id
WHERE o.total_amount > (
  SELECT AVG(total_amount) FROM orders
)`,
	},
	{
		ID:          "window-function",
		Title:       "Window function",
		Description: "Rank products by price within each category.",
		Difficulty:  "advanced",
		Query: `SELECT name, category, price,
       RANK() OVER (PARTITION BY category ORDER BY price DESC) as price_rank
FROM products`,
	},
	{
		ID:          "case-expression",
		Title:       "CASE expression",
		Description: "Categorize products by price range.",
		Difficulty:  "advanced",
		Query: `SELECT name, price,
       CASE
         WHEN price < 25 THEN 'Budget'
         WHEN price >= 25 AND price < 75 THEN 'Mid-range'
         ELSE 'Premium'
       END as price_category
FROM products
ORDER BY price`,
	},
	{
		ID:          "common-table-expression",
		Title:       "Common Table Expression (CTE)",
		Description: "Find the most valuable customers using a CTE.",
		Difficulty:  "advanced",
		Query: `WITH customer_totals AS (
  SELECT u.id, u.first_name, u.last_name, SUM(o.total_amount) as total_spent
  FROM users u
  JOIN orders o ON u.id = o.user_id
  GROUP BY u.id, u.first_name, u.last_name
)
SELECT first_name, last_name, total_spent
FROM customer_totals
ORDER BY total_spent DESC
LIMIT 5`,
	},
	{
		ID:          "exists-subquery",
		Title:       "EXISTS Subquery",
		Description: "Find users who have never placed an order.",
		Difficulty:  "advanced",
		Query: `SELECT first_name, last_name, email
FROM users u
WHERE NOT EXISTS (
  SELECT 1 FROM orders o
  WHERE o.user_id = u.id
)`,
	},
	{
		ID:          "complex-aggregation",
		Title:       "Complex Aggregation",
		Description: "Calculate product sales statistics.",
		Difficulty:  "advanced",
		Query: `SELECT
  p.category,
  COUNT(DISTINCT p.id) as unique_products,
  COUNT(oi.id) as total_sales,
  ROUND(AVG(oi.price), 2) as avg_sale_price,
  MIN(oi.price) as min_price,
  MAX(oi.price) as max_price,
  SUM(oi.quantity) as total_units_sold
FROM products p
LEFT JOIN order_items oi ON p.id = oi.product_id
GROUP BY p.category
ORDER BY total_units_sold DESC`,
	},
}
