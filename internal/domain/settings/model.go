// Package settings provides the business card and default line-item
// templates. A single record, no history; every save overwrites the last.
package settings

import (
	"borequote/internal/core/id"
	"borequote/internal/core/types"
)

// BusinessCard is the contact block printed on every quotation document.
type BusinessCard struct {
	CompanyName string `json:"companyName"`
	OwnerName   string `json:"ownerName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// ItemTemplate is a reusable line item seed (name + unit price) used to
// prefill new quotations.
type ItemTemplate struct {
	ID           id.ID       `json:"id"`
	Name         string      `json:"name"`
	PricePerUnit types.Money `json:"pricePerUnit"`
}

// Settings is the single persisted settings record.
type Settings struct {
	BusinessCard BusinessCard   `json:"businessCard"`
	DefaultItems []ItemTemplate `json:"defaultItems"`
}

// DefaultBusinessCard returns the placeholder card shipped before the owner
// fills in their own details.
func DefaultBusinessCard() BusinessCard {
	return BusinessCard{
		CompanyName: "Borwell Services",
		OwnerName:   "Your Name",
		Phone:       "+91 98765 43210",
		Email:       "contact@borwell.com",
		Address:     "Your Address, City, State",
	}
}

// DefaultItemTemplates returns the stock borewell price list used until the
// owner edits their own.
func DefaultItemTemplates() []ItemTemplate {
	return []ItemTemplate{
		{ID: id.New(), Name: `Boring 5"`, PricePerUnit: types.NewMoney(180)},
		{ID: id.New(), Name: `Boring 6"`, PricePerUnit: types.NewMoney(220)},
		{ID: id.New(), Name: "Casing ISO", PricePerUnit: types.NewMoney(450)},
		{ID: id.New(), Name: "Stainer Pipe", PricePerUnit: types.NewMoney(380)},
		{ID: id.New(), Name: "PVC Pipe", PricePerUnit: types.NewMoney(150)},
		{ID: id.New(), Name: "Motor Installation", PricePerUnit: types.NewMoney(3500)},
	}
}

// Default returns a fully populated settings record.
func Default() Settings {
	return Settings{
		BusinessCard: DefaultBusinessCard(),
		DefaultItems: DefaultItemTemplates(),
	}
}
