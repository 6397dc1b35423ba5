package service

import (
	"context"

	"github.com/flexprice/rewardengine/internal/api/dto"
	"github.com/flexprice/rewardengine/internal/domain/cart"
	"github.com/flexprice/rewardengine/internal/domain/reward"
	ierr "github.com/flexprice/rewardengine/internal/errors"
	"github.com/flexprice/rewardengine/internal/sentry"
	"github.com/samber/lo"
)

// RewardService applies already selected promotion rewards to carts.
// Every method mutates the given cart or component in place; the caller must own it
// exclusively for the duration of the call.
type RewardService interface {
	// ApplyRewards recomputes the discounts of the cart and of all its components
	ApplyRewards(ctx context.Context, c *cart.ShoppingCart, rewards []*reward.Reward) error

	// Single component variants, for callers pricing one component at a time
	ApplyLineItemRewards(ctx context.Context, currency string, lineItem *cart.LineItem, rewards []*reward.Reward) error
	ApplyShipmentRewards(ctx context.Context, currency string, shipment *cart.Shipment, rewards []*reward.Reward) error
	ApplyPaymentRewards(ctx context.Context, currency string, payment *cart.Payment, rewards []*reward.Reward) error

	// ApplyCartRewards builds a cart from the request, applies its rewards and returns the priced cart
	ApplyCartRewards(ctx context.Context, req dto.ApplyRewardsRequest) (*dto.CartResponse, error)
}

type rewardService struct {
	ServiceParams
}

func NewRewardService(params ServiceParams) RewardService {
	return &rewardService{
		ServiceParams: params,
	}
}

func (s *rewardService) ApplyRewards(ctx context.Context, c *cart.ShoppingCart, rewards []*reward.Reward) error {
	if err := validateCart(c); err != nil {
		return err
	}

	span, ctx := s.Sentry.StartSpan(ctx, "rewards.apply", map[string]interface{}{
		"cart_id": c.ID,
		"rewards": len(rewards),
	})
	defer sentry.FinishSpan(span)

	c.ApplyRewards(rewards)

	s.Logger.WithContext(ctx).Debugw("applied rewards to cart",
		"cart_id", c.ID,
		"rewards", len(rewards),
		"items", len(c.Items),
		"shipments", len(c.Shipments),
		"payments", len(c.Payments),
		"cart_discounts", len(c.Discounts),
		"cart_discount_amount", c.DiscountAmount.String(),
	)
	return nil
}

func (s *rewardService) ApplyLineItemRewards(ctx context.Context, currency string, lineItem *cart.LineItem, rewards []*reward.Reward) error {
	if lineItem == nil {
		return ierr.NewError("line item is required").
			WithHint("Line item must not be empty").
			Mark(ierr.ErrValidation)
	}

	lineItem.ApplyRewards(currency, rewards)

	s.Logger.WithContext(ctx).Debugw("applied rewards to line item",
		"line_item_id", lineItem.ID,
		"product_id", lineItem.ProductID,
		"discounts", len(lineItem.Discounts),
		"discount_amount", lineItem.DiscountAmount.String(),
	)
	return nil
}

func (s *rewardService) ApplyShipmentRewards(ctx context.Context, currency string, shipment *cart.Shipment, rewards []*reward.Reward) error {
	if shipment == nil {
		return ierr.NewError("shipment is required").
			WithHint("Shipment must not be empty").
			Mark(ierr.ErrValidation)
	}

	shipment.ApplyRewards(currency, rewards)

	s.Logger.WithContext(ctx).Debugw("applied rewards to shipment",
		"shipment_id", shipment.ID,
		"shipment_method_code", shipment.ShipmentMethodCode,
		"discounts", len(shipment.Discounts),
		"discount_amount", shipment.DiscountAmount.String(),
	)
	return nil
}

func (s *rewardService) ApplyPaymentRewards(ctx context.Context, currency string, payment *cart.Payment, rewards []*reward.Reward) error {
	if payment == nil {
		return ierr.NewError("payment is required").
			WithHint("Payment must not be empty").
			Mark(ierr.ErrValidation)
	}

	payment.ApplyRewards(currency, rewards)

	s.Logger.WithContext(ctx).Debugw("applied rewards to payment",
		"payment_id", payment.ID,
		"payment_gateway_code", payment.PaymentGatewayCode,
		"discounts", len(payment.Discounts),
		"discount_amount", payment.DiscountAmount.String(),
	)
	return nil
}

func (s *rewardService) ApplyCartRewards(ctx context.Context, req dto.ApplyRewardsRequest) (*dto.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.Cart.ToCart()
	if err := s.ApplyRewards(ctx, c, dto.ToRewards(req.Rewards)); err != nil {
		return nil, err
	}

	return &dto.CartResponse{Cart: c}, nil
}

// validateCart rejects carts the engine cannot price without dereferencing nil
func validateCart(c *cart.ShoppingCart) error {
	if c == nil {
		return ierr.NewError("cart is required").
			WithHint("Cart must not be empty").
			Mark(ierr.ErrValidation)
	}

	nilComponents := map[string]bool{
		"items":                     lo.Contains(c.Items, nil),
		"shipments":                 lo.Contains(c.Shipments, nil),
		"payments":                  lo.Contains(c.Payments, nil),
		"available_payment_methods": lo.Contains(c.AvailablePaymentMethods, nil),
		"available_shipping_rates":  lo.Contains(c.AvailableShippingRates, nil),
	}
	invalid := lo.Keys(lo.PickBy(nilComponents, func(_ string, hasNil bool) bool {
		return hasNil
	}))
	if len(invalid) > 0 {
		return ierr.NewError("cart contains empty components").
			WithHint("Cart components must not be empty").
			WithReportableDetails(map[string]any{
				"cart_id":     c.ID,
				"collections": invalid,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
