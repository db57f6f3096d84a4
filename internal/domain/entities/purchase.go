package entities

import "strings"

// PurchaseState is the provider-independent state of a single purchase.
//
// Vendor notifications are translated into one of these values before they
// reach application callbacks. OnHold has no vendor counterpart; it is kept
// for purchases the provider still reports as pending.

type PurchaseState string

const (
	PurchaseStateCompleted PurchaseState = "completed"
	PurchaseStateFailed    PurchaseState = "failed"
	PurchaseStateRefunded  PurchaseState = "refunded"
	PurchaseStateOnHold    PurchaseState = "on_hold"
)

// PurchaseResult is the provider-independent outcome of a billing request.

type PurchaseResult string

const (
	PurchaseResultOk                       PurchaseResult = "ok"
	PurchaseResultUnavailable              PurchaseResult = "unavailable"
	PurchaseResultErrorUnknown             PurchaseResult = "error_unknown"
	PurchaseResultErrorInvalidProduct      PurchaseResult = "error_invalid_product"
	PurchaseResultErrorConnectionFailed    PurchaseResult = "error_connection_failed"
	PurchaseResultErrorCancelled           PurchaseResult = "error_cancelled"
	PurchaseResultErrorProductAlreadyOwned PurchaseResult = "error_product_already_owned"
)

// IsError reports whether the result is one of the error_* values.
// Unavailable is a negative answer from the provider, not an error.
func (r PurchaseResult) IsError() bool {
	return strings.HasPrefix(string(r), "error_")
}
