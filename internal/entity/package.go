package entity

import "time"

// PackageType classifies what kind of engagement a package delivers.
type PackageType string

const (
	PackageTypeFollowers PackageType = "followers"
	PackageTypeLikes     PackageType = "likes"
	PackageTypeViews     PackageType = "views"
	PackageTypeComments  PackageType = "comments"
)

// PackageTypes lists every accepted package type.
func PackageTypes() []PackageType {
	return []PackageType{
		PackageTypeFollowers,
		PackageTypeLikes,
		PackageTypeViews,
		PackageTypeComments,
	}
}

// Valid reports whether t is a member of the closed type set.
func (t PackageType) Valid() bool {
	switch t {
	case PackageTypeFollowers, PackageTypeLikes, PackageTypeViews, PackageTypeComments:
		return true
	}
	return false
}

func (t PackageType) String() string { return string(t) }

// Package is a purchasable engagement offering stored in the packages
// collection. The id field is server-generated and distinct from Mongo's _id.
type Package struct {
	ID           string      `bson:"id"`
	Name         string      `bson:"name"`
	Description  string      `bson:"description"`
	Type         PackageType `bson:"type"`
	Quantity     int         `bson:"quantity"`
	Price        float64     `bson:"price"`
	DeliveryTime string      `bson:"delivery_time"`
	Popular      bool        `bson:"popular"`
	CreatedAt    time.Time   `bson:"created_at"`
}
