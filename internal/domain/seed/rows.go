package seed

import "time"

// OrderStatus is one of the three order states the playground schema knows.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Row types mirror the playground schema field for field. IDs are assigned
// sequentially in insert order so foreign keys can be resolved in memory;
// tables are created fresh every run, so SERIAL assigns the same values.

type Country struct {
	ID        int
	Name      string
	Code      string
	Continent string
}

type City struct {
	ID         int
	Name       string
	CountryID  int
	Population int
}

type User struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	CountryID int
	CityID    int
}

type Product struct {
	ID          int
	Name        string
	Description string
	Price       int64
	Category    string
	Stock       int
}

type Order struct {
	ID                int
	UserID            int
	TotalAmount       int64
	Status            OrderStatus
	OrderDate         time.Time
	EstimatedDelivery *time.Time
	DeliveryDate      *time.Time
}

type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	Price     int64
}

// Dataset is one generation run's worth of rows, in FK dependency order.
type Dataset struct {
	Countries  []Country
	Cities     []City
	Users      []User
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
}
