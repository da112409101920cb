package entity

import "time"

// OrderStatus tracks an order through payment and fulfillment.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every accepted order status.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusProcessing,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

// RevenueStatuses are the statuses whose orders count toward total revenue.
func RevenueStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPaid, OrderStatusProcessing, OrderStatusCompleted}
}

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string { return string(s) }

// Order is a customer purchase request stored in the orders collection.
// The package_* fields are copied from the package at creation time and stay
// untouched by later catalog edits.
type Order struct {
	ID                string      `bson:"id"`
	CustomerName      string      `bson:"customer_name"`
	CustomerEmail     string      `bson:"customer_email"`
	CustomerPhone     string      `bson:"customer_phone"`
	InstagramUsername string      `bson:"instagram_username"`
	PackageID         string      `bson:"package_id"`
	PackageName       string      `bson:"package_name"`
	PackageQuantity   int         `bson:"package_quantity"`
	PackagePrice      float64     `bson:"package_price"`
	Status            OrderStatus `bson:"status"`
	PixCode           string      `bson:"pix_code"`
	PixQRCode         string      `bson:"pix_qr_code"`
	PaymentID         string      `bson:"payment_id"`
	CreatedAt         time.Time   `bson:"created_at"`
	UpdatedAt         time.Time   `bson:"updated_at"`
}
