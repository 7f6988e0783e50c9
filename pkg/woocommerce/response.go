package woocommerce

// Order is the WooCommerce representation of a created order.
type Order struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number"`
	Status      string     `json:"status"`
	Currency    string     `json:"currency"`
	Total       string     `json:"total"`
	DateCreated string     `json:"date_created"`
	Billing     Address    `json:"billing"`
	LineItems   []LineItem `json:"line_items"`
	MetaData    []MetaData `json:"meta_data"`
}

// APIError is the WooCommerce REST API error envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
