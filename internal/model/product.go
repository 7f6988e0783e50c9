package model

import (
	"encoding/json"
	"fmt"
)

// DefaultPSUCapacity is assumed for power supplies that do not declare
// a wattage in their specs.
const DefaultPSUCapacity = 750

// Product represents a single catalog entry. Price is an integer amount
// in the currency's minor-unit-free form. Socket is only meaningful for
// CPUs and mainboards; Wattage is the component's power draw.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Brand       string   `json:"brand"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Specs       Specs    `json:"specs,omitempty"`
	Socket      string   `json:"socket,omitempty"`
	Wattage     int      `json:"wattage,omitempty"`
	InStock     bool     `json:"inStock"`
}

// productJSON mirrors Product with the specs block left raw so the
// concrete shape can be chosen from the category.
type productJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Brand       string          `json:"brand"`
	Price       int             `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
	Specs       json.RawMessage `json:"specs,omitempty"`
	Socket      string          `json:"socket,omitempty"`
	Wattage     int             `json:"wattage,omitempty"`
	InStock     *bool           `json:"inStock"`
}

// UnmarshalJSON decodes a product, dispatching the specs block on the
// product category. InStock defaults to true when absent.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	specs, err := DecodeSpecs(raw.Category, raw.Specs)
	if err != nil {
		return err
	}

	inStock := true
	if raw.InStock != nil {
		inStock = *raw.InStock
	}

	*p = Product{
		ID:          raw.ID,
		Name:        raw.Name,
		Category:    raw.Category,
		Brand:       raw.Brand,
		Price:       raw.Price,
		Image:       raw.Image,
		Description: raw.Description,
		Specs:       specs,
		Socket:      raw.Socket,
		Wattage:     raw.Wattage,
		InStock:     inStock,
	}
	return nil
}

// Validate checks the invariants that hold for every stored product.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if !p.Category.Valid() {
		return NewDomainError(ErrCodeInvalidCategory, fmt.Sprintf("invalid category: %q", p.Category))
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	return nil
}

// PSUCapacity returns the power supply's rated capacity in watts. A PSU
// without a declared capacity falls back to DefaultPSUCapacity.
func (p *Product) PSUCapacity() int {
	if s, ok := p.Specs.(*PSUSpecs); ok && s.Wattage > 0 {
		return s.Wattage
	}
	return DefaultPSUCapacity
}

// MemoryType returns the DDR generation a product declares, either as a
// mainboard's supported type or a RAM kit's own type. Empty when the
// product does not declare one.
func (p *Product) MemoryType() string {
	switch s := p.Specs.(type) {
	case *MainboardSpecs:
		return s.MemoryType
	case *RAMSpecs:
		return s.Type
	}
	return ""
}
