package service

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields        = errors.New("missing required fields")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrItemUnavailable      = errors.New("menu item is not available")

	// -- Resource State --
	ErrCafeNotFound     = errors.New("cafe not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCartEmpty        = errors.New("cart is empty")

	// -- Capability Availability --
	ErrAnalyticsDisabled = errors.New("analytics is not configured")
)
