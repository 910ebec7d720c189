package constants

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Delivery method constants
const (
	DeliveryMethodPickup  = "pickup"
	DeliveryMethodCourier = "courier"
	DeliveryMethodPost    = "post"
)

// User role constants
const (
	RoleClient   = "client"
	RoleOperator = "operator"
)

// Sort direction constants
const (
	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)

// Allowlisted sort columns per listing. Keys are the accepted query values,
// values are the column actually placed into the ORDER BY clause.
var (
	PartSortColumns = map[string]string{
		"price":      "price",
		"name":       "name",
		"stock":      "stock",
		"created_at": "created_at",
		"createdAt":  "created_at",
	}
	SupplierSortColumns = map[string]string{
		"name":       "name",
		"rating":     "rating",
		"created_at": "created_at",
		"createdAt":  "created_at",
	}
	OrderSortColumns = map[string]string{
		"created_at":  "created_at",
		"createdAt":   "created_at",
		"total_price": "total_price",
		"status":      "status",
	}
)

// Rating bounds shared by supplier ratings and part reviews
const (
	RatingMin = 1
	RatingMax = 5
)

// Cache default configuration constants
const (
	RedisPrefixDefault = "razbor"
)
