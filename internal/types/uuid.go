package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex cart_01JAB6Z2K5V7X8W9Y0Z1A2B3C4
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_CART      = "cart"
	UUID_PREFIX_LINE_ITEM = "line"
	UUID_PREFIX_SHIPMENT  = "ship"
	UUID_PREFIX_PAYMENT   = "pay"
)
