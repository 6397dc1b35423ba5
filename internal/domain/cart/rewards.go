package cart

import (
	"github.com/flexprice/rewardengine/internal/domain/reward"
	"github.com/flexprice/rewardengine/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ApplyRewards recomputes every discount on the cart from rewards.
// Cart level rewards are taken off the original subtotal, so they add up rather than
// compound. Items, shipments and payments are then priced in their existing order.
// The cart and its component collections must be non-nil.
func (c *ShoppingCart) ApplyRewards(rewards []*reward.Reward) {
	subtotalRewards := applicable(rewards, types.RewardTypeCartSubtotal, "")
	c.Discounts, c.DiscountAmount = accumulate(subtotalRewards, c.Currency, 1, decimal.Zero, func(decimal.Decimal) decimal.Decimal {
		return c.SubTotal
	})

	lineItemRewards := reward.FilterByType(rewards, types.RewardTypeCatalogItemAmount)
	for _, lineItem := range c.Items {
		lineItem.ApplyRewards(c.Currency, lineItemRewards)
	}

	shipmentRewards := reward.FilterByType(rewards, types.RewardTypeShipment)
	for _, shipment := range c.Shipments {
		shipment.ApplyRewards(c.Currency, shipmentRewards)
	}

	paymentRewards := reward.FilterByType(rewards, types.RewardTypePayment)
	for _, payment := range c.Payments {
		payment.ApplyRewards(c.Currency, paymentRewards)
	}

	for _, paymentMethod := range c.AvailablePaymentMethods {
		paymentMethod.ApplyRewards(paymentRewards)
	}
	for _, shippingRate := range c.AvailableShippingRates {
		shippingRate.ApplyRewards(shipmentRewards)
	}
}

// ApplyRewards prices the line item. The list/sale price gap is kept as the baseline discount
// and rewards compound on top of it, each one taken off ListPrice minus the discount so far.
// A line with no quantity keeps only the baseline.
func (li *LineItem) ApplyRewards(currency string, rewards []*reward.Reward) {
	lineItemRewards := applicable(rewards, types.RewardTypeCatalogItemAmount, li.ProductID)

	baseline := decimal.Max(decimal.Zero, li.ListPrice.Sub(li.SalePrice))
	if li.Quantity <= 0 {
		li.Discounts = []*Discount{}
		li.DiscountAmount = baseline
		return
	}

	li.Discounts, li.DiscountAmount = accumulate(lineItemRewards, currency, li.Quantity, baseline, func(discountAmount decimal.Decimal) decimal.Decimal {
		return li.ListPrice.Sub(discountAmount)
	})
}

// ApplyRewards prices the shipment with the rewards matching its shipping method
func (s *Shipment) ApplyRewards(currency string, rewards []*reward.Reward) {
	shipmentRewards := applicable(rewards, types.RewardTypeShipment, s.ShipmentMethodCode)
	s.Discounts, s.DiscountAmount = accumulate(shipmentRewards, currency, 1, decimal.Zero, func(discountAmount decimal.Decimal) decimal.Decimal {
		return s.Price.Sub(discountAmount)
	})
}

// ApplyRewards prices the payment with the rewards matching its gateway
func (p *Payment) ApplyRewards(currency string, rewards []*reward.Reward) {
	paymentRewards := applicable(rewards, types.RewardTypePayment, p.PaymentGatewayCode)
	p.Discounts, p.DiscountAmount = accumulate(paymentRewards, currency, 1, decimal.Zero, func(discountAmount decimal.Decimal) decimal.Decimal {
		return p.Price.Sub(discountAmount)
	})
}

// ApplyRewards sets the discount a payment method would get if chosen.
// Every matching reward is taken off the full price and the amounts are summed.
func (pm *PaymentMethod) ApplyRewards(rewards []*reward.Reward) {
	pm.DiscountAmount = sumRewards(applicable(rewards, types.RewardTypePayment, pm.Code), pm.Price)
}

// ApplyRewards sets the discount a shipping rate would get if chosen.
// A rate without a shipping method only picks up rewards with no method filter.
func (sr *ShippingRate) ApplyRewards(rewards []*reward.Reward) {
	sr.DiscountAmount = sumRewards(applicable(rewards, types.RewardTypeShipment, sr.ShippingMethodCode), sr.Rate)
}

func applicable(rewards []*reward.Reward, t types.RewardType, code string) []*reward.Reward {
	return lo.Filter(rewards, func(r *reward.Reward, _ int) bool {
		return r.IsApplicableTo(t, code)
	})
}

// accumulate applies rewards in order starting from baseline. base yields the price a reward
// is computed against given the discount accumulated so far. Non-positive amounts are dropped.
func accumulate(
	rewards []*reward.Reward,
	currency string,
	quantity int64,
	baseline decimal.Decimal,
	base func(discountAmount decimal.Decimal) decimal.Decimal,
) ([]*Discount, decimal.Decimal) {
	discounts := make([]*Discount, 0, len(rewards))
	discountAmount := baseline

	for _, r := range rewards {
		amount := r.GetRewardAmount(base(discountAmount), quantity)
		if !amount.IsPositive() {
			continue
		}

		discounts = append(discounts, &Discount{
			Coupon:         r.Coupon,
			Currency:       currency,
			Description:    r.GetDescription(),
			PromotionID:    r.GetPromotionID(),
			DiscountAmount: amount,
		})
		discountAmount = discountAmount.Add(amount)
	}

	return discounts, discountAmount
}

func sumRewards(rewards []*reward.Reward, price decimal.Decimal) decimal.Decimal {
	return lo.Reduce(rewards, func(total decimal.Decimal, r *reward.Reward, _ int) decimal.Decimal {
		amount := r.GetRewardAmount(price, 1)
		if !amount.IsPositive() {
			return total
		}
		return total.Add(amount)
	}, decimal.Zero)
}
