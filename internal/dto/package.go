package dto

import "time"

// CreatePackageRequest is the admin payload for creating or fully replacing a
// catalog package. Server-generated fields (id, created_at) are never accepted
// from the client.
type CreatePackageRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=followers likes views comments"`
	Quantity     int      `json:"quantity" validate:"gt=0"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	DeliveryTime string   `json:"delivery_time" validate:"required"`
	Popular      bool     `json:"popular"`
}

// PackageResponse represents a package as exposed via the HTTP transport.
type PackageResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	DeliveryTime string    `json:"delivery_time"`
	Popular      bool      `json:"popular"`
	CreatedAt    time.Time `json:"created_at"`
}
