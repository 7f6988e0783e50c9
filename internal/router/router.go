// Package router wires the HTTP handlers and middleware into a single
// http.Handler.
package router

import (
	"net/http"

	"pc-builder/internal/handler"
	"pc-builder/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Authentication is only applied when an API key is configured.
func New(
	productHandler *handler.ProductHandler,
	buildHandler *handler.BuildHandler,
	compatibilityHandler *handler.CompatibilityHandler,
	wooHandler *handler.WooCommerceHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.List(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/categories", productHandler.Categories)

	// Build handler function
	buildRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Creation targets the collection; reads and updates target an ID
		if r.URL.Path == "/api/builds" || r.URL.Path == "/api/builds/" {
			buildHandler.Create(w, r)
			return
		}
		buildHandler.GetOrUpdate(w, r)
	}

	// Register build routes (both with and without trailing slash)
	mux.HandleFunc("/api/builds", buildRouteHandler)
	mux.HandleFunc("/api/builds/", buildRouteHandler)

	mux.HandleFunc("/api/compatibility", compatibilityHandler.Check)

	mux.HandleFunc("/api/woocommerce/order", wooHandler.CreateOrder)
	mux.HandleFunc("/api/woocommerce/status", wooHandler.Status)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	if apiKey != "" {
		handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	}
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
