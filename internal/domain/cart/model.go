package cart

import (
	"github.com/shopspring/decimal"
)

// Discount is one materialized reward outcome attached to a cart component.
// It is created on every application pass and never changed afterwards.
type Discount struct {
	Coupon         string          `json:"coupon,omitempty"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description,omitempty"`
	PromotionID    string          `json:"promotion_id,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// ShoppingCart owns its items, shipments and payments. Rewards are applied in place.
type ShoppingCart struct {
	ID             string          `json:"id"`
	Currency       string          `json:"currency"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Discounts      []*Discount     `json:"discounts"`
	Items          []*LineItem     `json:"items"`
	Shipments      []*Shipment     `json:"shipments"`
	Payments       []*Payment      `json:"payments"`

	// Checkout options the customer can still pick from
	AvailablePaymentMethods []*PaymentMethod `json:"available_payment_methods,omitempty"`
	AvailableShippingRates  []*ShippingRate  `json:"available_shipping_rates,omitempty"`
}

type LineItem struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	ListPrice      decimal.Decimal `json:"list_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Quantity       int64           `json:"quantity"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Discounts      []*Discount     `json:"discounts"`
}

type Shipment struct {
	ID                 string          `json:"id"`
	ShipmentMethodCode string          `json:"shipment_method_code"`
	Price              decimal.Decimal `json:"price"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	Discounts          []*Discount     `json:"discounts"`
}

type Payment struct {
	ID                 string          `json:"id"`
	PaymentGatewayCode string          `json:"payment_gateway_code"`
	Price              decimal.Decimal `json:"price"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	Discounts          []*Discount     `json:"discounts"`
}

// PaymentMethod is a payment option offered at checkout, priced before it is chosen
type PaymentMethod struct {
	Code           string          `json:"code"`
	Price          decimal.Decimal `json:"price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// ShippingRate is a shipping option offered at checkout. ShippingMethodCode is empty
// when the rate is not bound to a method.
type ShippingRate struct {
	ShippingMethodCode string          `json:"shipping_method_code,omitempty"`
	Rate               decimal.Decimal `json:"rate"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
}
