package googleplay

import "billing_codes/internal/domain/entities"

// TranslatePurchaseState maps a Google Play purchase state onto the internal
// purchase state. Any value Google Play does not define maps to Failed.
func TranslatePurchaseState(vendorState int) entities.PurchaseState {
	switch PurchaseState(vendorState) {
	case PurchaseStatePurchased:
		return entities.PurchaseStateCompleted
	case PurchaseStateCanceled:
		return entities.PurchaseStateFailed
	case PurchaseStateRefunded:
		return entities.PurchaseStateRefunded
	default:
		return entities.PurchaseStateFailed
	}
}

// TranslateResponseCode maps a Google Play response code onto the internal
// purchase result. DeveloperError, Error and any undefined value all collapse
// to ErrorUnknown; callers rely on the collapsed value.
func TranslateResponseCode(vendorCode int) entities.PurchaseResult {
	switch ResponseCode(vendorCode) {
	case ResultOK:
		return entities.PurchaseResultOk
	case ResultUserCanceled:
		return entities.PurchaseResultErrorCancelled
	case ResultServiceUnavailable:
		return entities.PurchaseResultErrorConnectionFailed
	case ResultBillingUnavailable:
		return entities.PurchaseResultUnavailable
	case ResultItemUnavailable:
		return entities.PurchaseResultErrorInvalidProduct
	case ResultItemAlreadyOwned:
		return entities.PurchaseResultErrorProductAlreadyOwned
	case ResultDeveloperError, ResultError:
		return entities.PurchaseResultErrorUnknown
	default:
		return entities.PurchaseResultErrorUnknown
	}
}
