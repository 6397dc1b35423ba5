package types

import (
	ierr "github.com/flexprice/rewardengine/internal/errors"
	"github.com/samber/lo"
)

// RewardType identifies the cart component a reward targets
type RewardType string

const (
	// RewardTypeCartSubtotal applies once to the cart subtotal
	RewardTypeCartSubtotal RewardType = "cart_subtotal"
	// RewardTypeCatalogItemAmount applies to each matching line item
	RewardTypeCatalogItemAmount RewardType = "catalog_item_amount"
	// RewardTypeShipment applies to each matching shipment
	RewardTypeShipment RewardType = "shipment"
	// RewardTypePayment applies to each matching payment
	RewardTypePayment RewardType = "payment"
)

func (rt RewardType) Validate() error {
	allowedTypes := []RewardType{
		RewardTypeCartSubtotal,
		RewardTypeCatalogItemAmount,
		RewardTypeShipment,
		RewardTypePayment,
	}
	if !lo.Contains(allowedTypes, rt) {
		return ierr.NewError("invalid reward type").
			WithHint("Please provide a valid reward type").
			WithReportableDetails(map[string]any{
				"type":          rt,
				"allowed_types": allowedTypes,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RewardAmountType is how a reward amount is interpreted
type RewardAmountType string

const (
	// RewardAmountTypeAbsolute is a fixed amount off per unit
	RewardAmountTypeAbsolute RewardAmountType = "absolute"
	// RewardAmountTypeRelative is a percentage of the unit price
	RewardAmountTypeRelative RewardAmountType = "relative"
)

func (rat RewardAmountType) Validate() error {
	allowedTypes := []RewardAmountType{
		RewardAmountTypeAbsolute,
		RewardAmountTypeRelative,
	}
	if !lo.Contains(allowedTypes, rat) {
		return ierr.NewError("invalid reward amount type").
			WithHint("Please provide a valid reward amount type (absolute or relative)").
			Mark(ierr.ErrValidation)
	}
	return nil
}
