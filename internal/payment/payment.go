// Package payment produces the placeholder PIX artifacts attached to an
// order: a templated payment string, its QR image as a data URI, and short
// payment identifiers. The code is display text only, not a verifiable
// payment-network payload; a real gateway integration would replace this
// package outright.
package payment

import (
	"encoding/base64"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// DefaultCity is the merchant city embedded when none is configured.
const DefaultCity = "São Paulo"

const (
	maxNameLen = 25
	maxCityLen = 15

	qrImageSize = 256
)

// PixCode renders the fixed-structure placeholder string. A fresh short id is
// embedded on every call. The amount is accepted for signature stability with
// a future gateway integration; the template does not carry it.
func PixCode(amount float64, name, city string) string {
	if city == "" {
		city = DefaultCity
	}
	return "00020126580014BR.GOV.BCB.PIX013636" + ShortID() +
		"5204000053039865802BR5925" + truncateRunes(name, maxNameLen) +
		"6009" + truncateRunes(city, maxCityLen) +
		"62070503***6304"
}

// QRDataURI encodes text as a PNG QR image wrapped in a base64 data URI. A
// standard scanner decodes the image back to the exact input.
func QRDataURI(text string) (string, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// ShortID returns the first 8 characters of a fresh UUID.
func ShortID() string {
	return uuid.NewString()[:8]
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
