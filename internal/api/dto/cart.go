package dto

import (
	"strings"

	"github.com/flexprice/rewardengine/internal/domain/cart"
	"github.com/flexprice/rewardengine/internal/domain/reward"
	ierr "github.com/flexprice/rewardengine/internal/errors"
	"github.com/flexprice/rewardengine/internal/types"
	"github.com/flexprice/rewardengine/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ApplyRewardsRequest carries a cart and the rewards already selected for it by promotion evaluation
type ApplyRewardsRequest struct {
	Cart    CartRequest     `json:"cart"`
	Rewards []RewardRequest `json:"rewards" validate:"dive"`
}

type CartRequest struct {
	ID                      string                 `json:"id,omitempty"`
	Currency                string                 `json:"currency" validate:"required,len=3"`
	SubTotal                decimal.Decimal        `json:"sub_total" validate:"decimal_gte0"`
	Items                   []LineItemRequest      `json:"items" validate:"dive"`
	Shipments               []ShipmentRequest      `json:"shipments" validate:"dive"`
	Payments                []PaymentRequest       `json:"payments" validate:"dive"`
	AvailablePaymentMethods []PaymentMethodRequest `json:"available_payment_methods,omitempty" validate:"dive"`
	AvailableShippingRates  []ShippingRateRequest  `json:"available_shipping_rates,omitempty" validate:"dive"`
}

type LineItemRequest struct {
	ID        string          `json:"id,omitempty"`
	ProductID string          `json:"product_id" validate:"required"`
	ListPrice decimal.Decimal `json:"list_price" validate:"decimal_gte0"`
	SalePrice decimal.Decimal `json:"sale_price" validate:"decimal_gte0"`
	Quantity  int64           `json:"quantity" validate:"gte=0"`
}

type ShipmentRequest struct {
	ID                 string          `json:"id,omitempty"`
	ShipmentMethodCode string          `json:"shipment_method_code"`
	Price              decimal.Decimal `json:"price" validate:"decimal_gte0"`
}

type PaymentRequest struct {
	ID                 string          `json:"id,omitempty"`
	PaymentGatewayCode string          `json:"payment_gateway_code"`
	Price              decimal.Decimal `json:"price" validate:"decimal_gte0"`
}

type PaymentMethodRequest struct {
	Code  string          `json:"code" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"decimal_gte0"`
}

type ShippingRateRequest struct {
	ShippingMethodCode string          `json:"shipping_method_code,omitempty"`
	Rate               decimal.Decimal `json:"rate" validate:"decimal_gte0"`
}

// RewardRequest is one reward as produced by promotion evaluation. Unknown types are accepted
// and never applied.
type RewardRequest struct {
	Type        types.RewardType `json:"type" validate:"required"`
	IsValid     bool             `json:"is_valid"`
	Coupon      string           `json:"coupon,omitempty"`
	PromotionID string           `json:"promotion_id,omitempty"`
	Promotion   *PromotionRef    `json:"promotion,omitempty"`

	ProductID      string `json:"product_id,omitempty"`
	ShippingMethod string `json:"shipping_method,omitempty"`
	PaymentMethod  string `json:"payment_method,omitempty"`

	AmountType         types.RewardAmountType `json:"amount_type,omitempty"`
	Amount             decimal.Decimal        `json:"amount"`
	MaxLimit           decimal.Decimal        `json:"max_limit" validate:"decimal_gte0"`
	Quantity           int64                  `json:"quantity,omitempty" validate:"gte=0"`
	ForNthQuantity     int64                  `json:"for_nth_quantity,omitempty" validate:"gte=0"`
	InEveryNthQuantity int64                  `json:"in_every_nth_quantity,omitempty" validate:"gte=0"`
}

type PromotionRef struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
}

// CartResponse is the cart with every discount recomputed
type CartResponse struct {
	Cart *cart.ShoppingCart `json:"cart"`
}

func (r *ApplyRewardsRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	for i, rw := range r.Rewards {
		if rw.AmountType == "" {
			continue
		}
		if err := rw.AmountType.Validate(); err != nil {
			return ierr.WithError(err).
				WithReportableDetails(map[string]any{
					"reward_index": i,
					"amount_type":  rw.AmountType,
				}).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// ToCart builds the domain cart. Components without an id get a generated one.
func (r *CartRequest) ToCart() *cart.ShoppingCart {
	return &cart.ShoppingCart{
		ID:             lo.Ternary(r.ID != "", r.ID, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CART)),
		Currency:       strings.ToUpper(r.Currency),
		SubTotal:       r.SubTotal,
		DiscountAmount: decimal.Zero,
		Discounts:      []*cart.Discount{},
		Items: lo.Map(r.Items, func(item LineItemRequest, _ int) *cart.LineItem {
			return &cart.LineItem{
				ID:        lo.Ternary(item.ID != "", item.ID, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM)),
				ProductID: item.ProductID,
				ListPrice: item.ListPrice,
				SalePrice: item.SalePrice,
				Quantity:  item.Quantity,
				Discounts: []*cart.Discount{},
			}
		}),
		Shipments: lo.Map(r.Shipments, func(s ShipmentRequest, _ int) *cart.Shipment {
			return &cart.Shipment{
				ID:                 lo.Ternary(s.ID != "", s.ID, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SHIPMENT)),
				ShipmentMethodCode: s.ShipmentMethodCode,
				Price:              s.Price,
				Discounts:          []*cart.Discount{},
			}
		}),
		Payments: lo.Map(r.Payments, func(p PaymentRequest, _ int) *cart.Payment {
			return &cart.Payment{
				ID:                 lo.Ternary(p.ID != "", p.ID, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT)),
				PaymentGatewayCode: p.PaymentGatewayCode,
				Price:              p.Price,
				Discounts:          []*cart.Discount{},
			}
		}),
		AvailablePaymentMethods: lo.Map(r.AvailablePaymentMethods, func(pm PaymentMethodRequest, _ int) *cart.PaymentMethod {
			return &cart.PaymentMethod{Code: pm.Code, Price: pm.Price}
		}),
		AvailableShippingRates: lo.Map(r.AvailableShippingRates, func(sr ShippingRateRequest, _ int) *cart.ShippingRate {
			return &cart.ShippingRate{ShippingMethodCode: sr.ShippingMethodCode, Rate: sr.Rate}
		}),
	}
}

func (r *RewardRequest) ToReward() *reward.Reward {
	rw := &reward.Reward{
		Type:           r.Type,
		IsValid:        r.IsValid,
		Coupon:         r.Coupon,
		PromotionID:    r.PromotionID,
		ProductID:      r.ProductID,
		ShippingMethod: r.ShippingMethod,
		PaymentMethod:  r.PaymentMethod,
		AmountRule: reward.AmountRule{
			AmountType:         lo.Ternary(r.AmountType != "", r.AmountType, types.RewardAmountTypeAbsolute),
			Amount:             r.Amount,
			MaxLimit:           r.MaxLimit,
			Quantity:           r.Quantity,
			ForNthQuantity:     r.ForNthQuantity,
			InEveryNthQuantity: r.InEveryNthQuantity,
		},
	}
	if r.Promotion != nil {
		rw.Promotion = &reward.Promotion{
			ID:          r.Promotion.ID,
			Description: r.Promotion.Description,
		}
	}
	return rw
}

func ToRewards(reqs []RewardRequest) []*reward.Reward {
	return lo.Map(reqs, func(r RewardRequest, _ int) *reward.Reward {
		return r.ToReward()
	})
}
