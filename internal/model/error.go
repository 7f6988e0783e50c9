package model

import (
	"fmt"
	"sort"
	"strings"
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeInvalidCategory  = "INVALID_CATEGORY"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeBuildNotFound    = "BUILD_NOT_FOUND"
	ErrCodeNoValidProducts  = "NO_VALID_PRODUCTS"
	ErrCodeWooNotConfigured = "WOOCOMMERCE_NOT_CONFIGURED"
	ErrCodeWooOrderFailed   = "WOOCOMMERCE_ORDER_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable machine-readable code alongside a
// human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrBuildNotFound   = NewDomainError(ErrCodeBuildNotFound, "Build not found")
	ErrNoValidProducts = NewDomainError(ErrCodeNoValidProducts, "No valid products found")
	ErrWooCommerceNotConfigured = NewDomainError(
		ErrCodeWooNotConfigured,
		"WooCommerce API not configured. Please provide WOOCOMMERCE_URL, WOOCOMMERCE_CONSUMER_KEY, and WOOCOMMERCE_CONSUMER_SECRET environment variables.",
	)
)

// ValidationError reports the individual fields of a request body that
// failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
