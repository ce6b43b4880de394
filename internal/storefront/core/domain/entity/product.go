package entity

import "github.com/shopspring/decimal"

// Product is a catalog record. Products are built once at startup and never mutated.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string
	Image       string
	Rating      decimal.Decimal
	Description string
}
