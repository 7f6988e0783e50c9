package woocommerce

import (
	"encoding/json"
	"strconv"

	"pc-builder/internal/model"
)

// OrderRequest is the WooCommerce order creation payload.
type OrderRequest struct {
	PaymentMethod      string     `json:"payment_method"`
	PaymentMethodTitle string     `json:"payment_method_title"`
	SetPaid            bool       `json:"set_paid"`
	Billing            Address    `json:"billing"`
	Shipping           Address    `json:"shipping"`
	LineItems          []LineItem `json:"line_items"`
	MetaData           []MetaData `json:"meta_data"`
}

// Address is a WooCommerce billing/shipping address.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// LineItem is one product line on an order. The catalog lives outside
// the WooCommerce store, so items are submitted by name and SKU rather
// than a store product id.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
	SKU      string `json:"sku,omitempty"`
}

// MetaData is a key/value pair attached to the order.
type MetaData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// buildConfiguration is the component summary stored on the order as
// metadata.
type buildConfiguration struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
}

// newBuildOrderRequest assembles the order payload for a PC build. The
// order is submitted unpaid with bank transfer as the payment method,
// and the full component list is attached as order metadata so the
// store keeps the configuration even if products change later.
func newBuildOrderRequest(products []model.Product, customer *model.CustomerInfo) OrderRequest {
	address := Address{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address1:  customer.Address1,
		City:      customer.City,
		Postcode:  customer.Postcode,
		Country:   customer.Country,
	}

	lineItems := make([]LineItem, 0, len(products))
	configuration := make([]buildConfiguration, 0, len(products))
	for _, p := range products {
		price := strconv.Itoa(p.Price)
		lineItems = append(lineItems, LineItem{
			Name:     p.Name,
			Quantity: 1,
			Price:    price,
			Total:    price,
			SKU:      p.ID,
		})
		configuration = append(configuration, buildConfiguration{
			Category: string(p.Category),
			Name:     p.Name,
			Price:    p.Price,
		})
	}

	// Marshalling a slice of plain structs cannot fail.
	configJSON, _ := json.Marshal(configuration)

	return OrderRequest{
		PaymentMethod:      "bacs",
		PaymentMethodTitle: "Direct Bank Transfer",
		SetPaid:            false,
		Billing:            address,
		Shipping:           address,
		LineItems:          lineItems,
		MetaData: []MetaData{
			{Key: "pc_build_configuration", Value: string(configJSON)},
			{Key: "order_type", Value: "pc_build"},
		},
	}
}
