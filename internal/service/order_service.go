package service

import (
	"context"
	"fmt"

	"pc-builder/internal/config"
	"pc-builder/internal/model"
	"pc-builder/internal/repository"
	"pc-builder/pkg/woocommerce"

	"github.com/rs/zerolog"
)

// OrderSubmitter submits a resolved build to the remote store. It is
// implemented by the WooCommerce client.
type OrderSubmitter interface {
	CreateBuildOrder(ctx context.Context, products []model.Product, customer *model.CustomerInfo) (*woocommerce.Order, error)
}

// orderService implements OrderService.
type orderService struct {
	productRepo repository.ProductRepository
	submitter   OrderSubmitter
	wooCfg      config.WooCommerceConfig
	logger      zerolog.Logger
}

// NewOrderService creates a new order service. The submitter is nil
// when the WooCommerce adapter is not configured; order submission then
// fails with a configuration error while Status keeps working.
func NewOrderService(
	productRepo repository.ProductRepository,
	submitter OrderSubmitter,
	wooCfg config.WooCommerceConfig,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		productRepo: productRepo,
		submitter:   submitter,
		wooCfg:      wooCfg,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder resolves the selected components and submits them as a
// WooCommerce order.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if s.submitter == nil {
		s.logger.Warn().Msg("order submitted without WooCommerce configuration")
		return nil, model.ErrWooCommerceNotConfigured
	}

	if err := req.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order request")
		return nil, err
	}

	products, err := s.productRepo.GetByIDs(ctx, req.Components)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(req.Components)).Msg("failed to resolve components")
		return nil, fmt.Errorf("failed to resolve components: %w", err)
	}

	if len(products) == 0 {
		s.logger.Warn().
			Int("requested", len(req.Components)).
			Msg("no valid products in order request")
		return nil, model.ErrNoValidProducts
	}

	order, err := s.submitter.CreateBuildOrder(ctx, products, req.CustomerInfo)
	if err != nil {
		s.logger.Error().Err(err).Msg("WooCommerce order creation failed")
		return nil, model.NewDomainError(model.ErrCodeWooOrderFailed,
			fmt.Sprintf("Failed to create WooCommerce order: %v", err))
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int("line_items", len(products)).
		Msg("order created")

	return &model.OrderResponse{
		Success:          true,
		OrderID:          order.ID,
		OrderTotal:       order.Total,
		Message:          "Order created successfully",
		WooCommerceOrder: order,
	}, nil
}

// Status reports which adapter credentials are configured. The secret
// values themselves are never exposed.
func (s *orderService) Status(_ context.Context) model.WooCommerceStatus {
	status := model.WooCommerceStatus{
		Configured:        s.wooCfg.Configured(),
		HasConsumerKey:    s.wooCfg.ConsumerKey != "",
		HasConsumerSecret: s.wooCfg.ConsumerSecret != "",
	}
	if s.wooCfg.URL != "" {
		url := s.wooCfg.URL
		status.APIURL = &url
	}
	return status
}
