// Package woocommerce is a minimal client for the WooCommerce REST API
// (v3), covering order creation for configured PC builds.
package woocommerce

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pc-builder/internal/model"

	"github.com/rs/zerolog"
)

// apiPrefix is the WooCommerce REST API route prefix.
const apiPrefix = "/wp-json/wc/v3"

// Config holds the WooCommerce store credentials.
type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
}

// Client is an HTTP client for a WooCommerce store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
	logger     zerolog.Logger
}

// NewClient constructs a new WooCommerce client with sane defaults.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	credentials := base64.StdEncoding.EncodeToString(
		[]byte(cfg.ConsumerKey + ":" + cfg.ConsumerSecret))

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authHeader: "Basic " + credentials,
		logger:     logger.With().Str("component", "woocommerce-client").Logger(),
	}
}

// CreateBuildOrder submits the resolved build components as a new order.
// The order is created unpaid with bank transfer as the payment method;
// payment is collected out of band.
func (c *Client) CreateBuildOrder(ctx context.Context, products []model.Product, customer *model.CustomerInfo) (*Order, error) {
	req := newBuildOrderRequest(products, customer)

	var order Order
	if err := c.doRequest(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}

	c.logger.Info().
		Int64("order_id", order.ID).
		Str("status", order.Status).
		Str("total", order.Total).
		Msg("WooCommerce order created")

	return &order, nil
}

// doRequest performs an HTTP request against the WooCommerce REST API
// with JSON payloads and decodes the JSON response into result.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + apiPrefix + endpoint

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", url).
		RawJSON("request", payload).
		Msg("outgoing WooCommerce request")

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status_code", resp.StatusCode).
		RawJSON("response", respBody).
		Msg("incoming WooCommerce response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr APIError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("WooCommerce API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("WooCommerce API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
