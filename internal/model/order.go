package model

// CustomerInfo is the billing/shipping contact for a remote order.
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address1  string `json:"address_1,omitempty"`
	City      string `json:"city,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	Country   string `json:"country,omitempty"`
}

// OrderRequest is the payload for submitting a build as a WooCommerce
// order: the selected product ids plus the customer contact.
type OrderRequest struct {
	Components   []string      `json:"components"`
	CustomerInfo *CustomerInfo `json:"customerInfo"`
}

// Validate checks the order request.
func (r *OrderRequest) Validate() error {
	fields := map[string]string{}
	if len(r.Components) == 0 {
		fields["components"] = "components must be a non-empty array of product ids"
	}
	if r.CustomerInfo == nil {
		fields["customerInfo"] = "customerInfo is required"
	} else {
		if r.CustomerInfo.FirstName == "" {
			fields["customerInfo.first_name"] = "first_name is required"
		}
		if r.CustomerInfo.Email == "" {
			fields["customerInfo.email"] = "email is required"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// OrderResponse is returned after a successful remote order submission.
type OrderResponse struct {
	Success          bool   `json:"success"`
	OrderID          int64  `json:"order_id"`
	OrderTotal       string `json:"order_total"`
	Message          string `json:"message"`
	WooCommerceOrder any    `json:"woocommerce_order"`
}

// WooCommerceStatus reports which adapter credentials are present. It
// never carries the secret values themselves.
type WooCommerceStatus struct {
	Configured        bool    `json:"woocommerce_configured"`
	APIURL            *string `json:"api_url"`
	HasConsumerKey    bool    `json:"has_consumer_key"`
	HasConsumerSecret bool    `json:"has_consumer_secret"`
}
