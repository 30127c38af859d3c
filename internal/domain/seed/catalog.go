package seed

// CatalogCountry is a predefined country the generator can select.
type CatalogCountry struct {
	Name      string
	Code      string
	Continent string
}

// CatalogCity is a predefined city keyed to its country by code.
type CatalogCity struct {
	Name        string
	CountryCode string
	Population  int
}

// Predefined reference data. Countries and cities are taken from the front of
// these slices, never sampled, so codes stay real-looking and non-duplicated.
var Countries = []CatalogCountry{
	{"United States", "US", "North America"},
	{"United Kingdom", "UK", "Europe"},
	{"France", "FR", "Europe"},
	{"Germany", "DE", "Europe"},
	{"Japan", "JP", "Asia"},
	{"Australia", "AU", "Oceania"},
	{"Brazil", "BR", "South America"},
	{"Canada", "CA", "North America"},
	{"India", "IN", "Asia"},
	{"China", "CN", "Asia"},
	{"Italy", "IT", "Europe"},
	{"Spain", "ES", "Europe"},
	{"Mexico", "MX", "North America"},
	{"Russia", "RU", "Europe"},
	{"South Korea", "KR", "Asia"},
	{"Netherlands", "NL", "Europe"},
	{"Sweden", "SE", "Europe"},
	{"Norway", "NO", "Europe"},
	{"Argentina", "AR", "South America"},
	{"South Africa", "ZA", "Africa"},
	{"Egypt", "EG", "Africa"},
	{"Thailand", "TH", "Asia"},
	{"Singapore", "SG", "Asia"},
	{"New Zealand", "NZ", "Oceania"},
	{"Switzerland", "CH", "Europe"},
	{"Belgium", "BE", "Europe"},
	{"Austria", "AT", "Europe"},
	{"Portugal", "PT", "Europe"},
	{"Denmark", "DK", "Europe"},
	{"Finland", "FI", "Europe"},
}

var Cities = []CatalogCity{
	{"New York", "US", 8804190},
	{"Los Angeles", "US", 3898747},
	{"Chicago", "US", 2746388},
	{"Houston", "US", 2304580},
	{"Phoenix", "US", 1608139},
	{"London", "UK", 8982000},
	{"Manchester", "UK", 547627},
	{"Birmingham", "UK", 1141816},
	{"Paris", "FR", 2148271},
	{"Lyon", "FR", 516092},
	{"Marseille", "FR", 861635},
	{"Berlin", "DE", 3669491},
	{"Munich", "DE", 1488202},
	{"Hamburg", "DE", 1899160},
	{"Tokyo", "JP", 13960000},
	{"Osaka", "JP", 2691185},
	{"Kyoto", "JP", 1474570},
	{"Sydney", "AU", 5312163},
	{"Melbourne", "AU", 5078193},
	{"Brisbane", "AU", 2560720},
	{"São Paulo", "BR", 12325232},
	{"Rio de Janeiro", "BR", 6748000},
	{"Brasília", "BR", 3055149},
	{"Toronto", "CA", 2930000},
	{"Vancouver", "CA", 675218},
	{"Montreal", "CA", 1780000},
	{"Mumbai", "IN", 20411274},
	{"Delhi", "IN", 32941309},
	{"Bangalore", "IN", 12764935},
	{"Beijing", "CN", 21540000},
	{"Shanghai", "CN", 28516904},
	{"Guangzhou", "CN", 18676605},
	{"Rome", "IT", 2872800},
	{"Milan", "IT", 1396059},
	{"Madrid", "ES", 3223334},
	{"Barcelona", "ES", 1620343},
	{"Mexico City", "MX", 9209944},
	{"Guadalajara", "MX", 1385629},
	{"Moscow", "RU", 12506468},
	{"St. Petersburg", "RU", 5384342},
	{"Seoul", "KR", 9720846},
	{"Busan", "KR", 3448737},
	{"Amsterdam", "NL", 872680},
	{"Stockholm", "SE", 975551},
	{"Oslo", "NO", 697549},
	{"Buenos Aires", "AR", 3054300},
	{"Cape Town", "ZA", 4618263},
	{"Cairo", "EG", 10230350},
	{"Bangkok", "TH", 10539415},
	{"Auckland", "NZ", 1695200},
}

// Name pools are sampled with replacement; duplicate first/last pairs across
// different emails are fine.
var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Christopher", "Karen", "Charles", "Nancy", "Daniel", "Lisa",
	"Matthew", "Betty", "Anthony", "Helen", "Mark", "Sandra", "Donald", "Donna",
	"Steven", "Carol", "Paul", "Ruth", "Andrew", "Sharon", "Joshua", "Michelle",
	"Kenneth", "Laura", "Kevin", "Kimberly", "Brian", "George", "Deborah", "Edward",
	"Dorothy", "Ronald", "Timothy", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary",
	"Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
	"Benjamin", "Samuel", "Amy", "Gregory", "Angela", "Alexander", "Ashley", "Patrick",
	"Brenda", "Frank", "Emma", "Raymond", "Olivia", "Jack", "Cynthia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
	"Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson",
	"Bailey", "Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward", "Richardson",
}

// ProductCategories is exported because the products table constrains category
// values to this fixed set.
var ProductCategories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports", "Kitchen", "Books",
	"Health & Beauty", "Toys", "Automotive", "Office Supplies", "Pet Supplies",
	"Jewelry", "Music", "Movies", "Games", "Food & Beverages",
}

var productAdjectives = []string{
	"Premium", "Professional", "Deluxe", "Ultra", "Smart", "Wireless", "Portable",
	"Compact", "Heavy-duty", "Lightweight", "Waterproof", "Eco-friendly", "Vintage",
	"Modern", "Classic", "Advanced", "Basic", "Essential", "Luxury", "Budget",
}

var productNouns = []string{
	"Phone", "Laptop", "Tablet", "Watch", "Camera", "Speaker", "Headphones",
	"Keyboard", "Mouse", "Monitor", "Printer", "Router", "Charger", "Cable",
	"Case", "Stand", "Holder", "Mount", "Adapter", "Battery", "Light", "Fan",
	"Heater", "Cooler", "Blender", "Mixer", "Toaster", "Kettle", "Pot", "Pan",
	"Knife", "Spoon", "Fork", "Plate", "Bowl", "Cup", "Mug", "Bottle", "Jar",
	"Box", "Bag", "Backpack", "Wallet", "Belt", "Hat", "Shirt", "Pants", "Shoes",
	"Jacket", "Dress", "Skirt", "Shorts", "Socks", "Gloves", "Scarf", "Tie",
}

var productModels = []string{"Pro", "Max", "Plus", "Elite", "X", "Ultra", "2024", "V2", "HD"}

var productFeatures = []string{
	"high-quality materials", "advanced technology", "user-friendly design",
	"durable construction", "energy efficient", "compact size", "premium finish",
	"easy to use", "versatile functionality", "modern styling",
	"reliable performance", "innovative features", "ergonomic design",
	"long-lasting", "professional grade",
}

var productBenefits = []string{
	"perfect for daily use", "ideal for professionals", "great for home or office",
	"suitable for all ages", "enhances productivity", "saves time and effort",
	"provides excellent value", "meets all your needs", "exceeds expectations",
	"delivers outstanding results", "offers superior performance", "ensures satisfaction",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "example.com"}

var emailSeparators = []string{".", "_", ""}
