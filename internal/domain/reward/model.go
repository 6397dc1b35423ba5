package reward

import (
	"strings"

	"github.com/flexprice/rewardengine/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Promotion is the provenance of a reward
type Promotion struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Reward is a single promotional discount unit produced upstream by promotion evaluation.
// Type selects which cart component the reward targets; only the target filter matching
// that type is consulted, the other two are ignored. An empty target filter matches every
// component of the reward's kind.
type Reward struct {
	Type        types.RewardType `json:"type"`
	IsValid     bool             `json:"is_valid"`
	Coupon      string           `json:"coupon,omitempty"`
	PromotionID string           `json:"promotion_id,omitempty"`
	Promotion   *Promotion       `json:"promotion,omitempty"`

	// Target filters
	ProductID      string `json:"product_id,omitempty"`
	ShippingMethod string `json:"shipping_method,omitempty"`
	PaymentMethod  string `json:"payment_method,omitempty"`

	AmountRule
}

// AmountRule computes the monetary value of a reward for a price and quantity
type AmountRule struct {
	AmountType types.RewardAmountType `json:"amount_type"`
	Amount     decimal.Decimal        `json:"amount"`
	// MaxLimit caps a relative reward's total when positive
	MaxLimit decimal.Decimal `json:"max_limit"`
	// Quantity caps the number of discounted units when positive
	Quantity int64 `json:"quantity,omitempty"`
	// ForNthQuantity units are discounted for every InEveryNthQuantity units bought
	ForNthQuantity     int64 `json:"for_nth_quantity,omitempty"`
	InEveryNthQuantity int64 `json:"in_every_nth_quantity,omitempty"`
}

// GetRewardAmount returns the discount this rule grants on price for quantity units.
// The result is capped at price * quantity but is otherwise unclamped: zero and negative
// results are returned as is and left for the caller to discard.
func (r AmountRule) GetRewardAmount(price decimal.Decimal, quantity int64) decimal.Decimal {
	quantity = max(quantity, 1)

	workQuantity := quantity
	if r.ForNthQuantity > 0 && r.InEveryNthQuantity > 0 {
		workQuantity = quantity / r.InEveryNthQuantity * r.ForNthQuantity
	}
	if r.Quantity > 0 {
		workQuantity = min(workQuantity, r.Quantity)
	}
	units := decimal.NewFromInt(workQuantity)

	var result decimal.Decimal
	switch r.AmountType {
	case types.RewardAmountTypeRelative:
		result = price.Mul(r.Amount).Div(decimal.NewFromInt(100)).Mul(units)
		if r.MaxLimit.IsPositive() {
			result = decimal.Min(result, r.MaxLimit)
		}
	default:
		result = r.Amount.Mul(units)
	}

	total := price.Mul(decimal.NewFromInt(quantity))
	if result.GreaterThan(total) {
		return total
	}
	return result
}

// GetPromotionID returns PromotionID, falling back to the attached promotion's id
func (r *Reward) GetPromotionID() string {
	if r.PromotionID != "" {
		return r.PromotionID
	}
	if r.Promotion != nil {
		return r.Promotion.ID
	}
	return ""
}

// GetDescription returns the attached promotion's description, if any
func (r *Reward) GetDescription() string {
	if r.Promotion == nil {
		return ""
	}
	return r.Promotion.Description
}

// IsApplicableTo reports whether r is a valid reward of kind t whose target filter matches code.
// Rewards of an unknown kind never apply.
func (r *Reward) IsApplicableTo(t types.RewardType, code string) bool {
	if r == nil || !r.IsValid || r.Type != t {
		return false
	}

	switch t {
	case types.RewardTypeCartSubtotal:
		return true
	case types.RewardTypeCatalogItemAmount:
		return matchesFilter(r.ProductID, code)
	case types.RewardTypeShipment:
		return matchesFilter(r.ShippingMethod, code)
	case types.RewardTypePayment:
		return matchesFilter(r.PaymentMethod, code)
	default:
		return false
	}
}

// matchesFilter treats an empty filter as a wildcard
func matchesFilter(filter, code string) bool {
	return filter == "" || strings.EqualFold(filter, code)
}

// FilterByType returns the non-nil rewards of kind t, keeping their order
func FilterByType(rewards []*Reward, t types.RewardType) []*Reward {
	return lo.Filter(rewards, func(r *Reward, _ int) bool {
		return r != nil && r.Type == t
	})
}
