package dto

import "time"

// CreateOrderRequest is the customer payload for placing an order against a
// catalog package. The Instagram username may carry a leading "@"; it is
// stripped before validation of emptiness.
type CreateOrderRequest struct {
	CustomerName      string `json:"customer_name" validate:"required"`
	CustomerEmail     string `json:"customer_email" validate:"required"`
	CustomerPhone     string `json:"customer_phone" validate:"required"`
	InstagramUsername string `json:"instagram_username" validate:"required"`
	PackageID         string `json:"package_id" validate:"required"`
}

// UpdateOrderStatusRequest changes an order's status to any member of the
// status set; transitions are unconstrained.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid processing completed cancelled"`
}

// OrderResponse represents an order as exposed via the HTTP transport.
type OrderResponse struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customer_name"`
	CustomerEmail     string    `json:"customer_email"`
	CustomerPhone     string    `json:"customer_phone"`
	InstagramUsername string    `json:"instagram_username"`
	PackageID         string    `json:"package_id"`
	PackageName       string    `json:"package_name"`
	PackageQuantity   int       `json:"package_quantity"`
	PackagePrice      float64   `json:"package_price"`
	Status            string    `json:"status"`
	PixCode           string    `json:"pix_code"`
	PixQRCode         string    `json:"pix_qr_code"`
	PaymentID         string    `json:"payment_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
