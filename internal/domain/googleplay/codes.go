package googleplay

import "fmt"

// Provider is the name collaborators use to select the Google Play vocabulary.
const Provider = "google_play"

// PurchaseState is a purchase state as reported by Google Play in the signed
// transaction data. Values are defined by Google Play and must not change.
type PurchaseState int

const (
	// User was charged for the order.
	PurchaseStatePurchased PurchaseState = 0
	// The charge failed on the server.
	PurchaseStateCanceled PurchaseState = 1
	// User received a refund for the order.
	PurchaseStateRefunded PurchaseState = 2
)

// PurchaseStates lists the known vendor states in code order.
var PurchaseStates = []PurchaseState{
	PurchaseStatePurchased,
	PurchaseStateCanceled,
	PurchaseStateRefunded,
}

func (s PurchaseState) String() string {
	switch s {
	case PurchaseStatePurchased:
		return "PURCHASED"
	case PurchaseStateCanceled:
		return "CANCELED"
	case PurchaseStateRefunded:
		return "REFUNDED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// Known reports whether s is one of the states Google Play defines.
func (s PurchaseState) Known() bool {
	return s >= PurchaseStatePurchased && s <= PurchaseStateRefunded
}

// ResponseCode is the result of a billing request as reported by Google Play.
type ResponseCode int

const (
	ResultOK                 ResponseCode = 0
	ResultUserCanceled       ResponseCode = 1
	ResultServiceUnavailable ResponseCode = 2
	ResultBillingUnavailable ResponseCode = 3
	ResultItemUnavailable    ResponseCode = 4
	ResultDeveloperError     ResponseCode = 5
	ResultError              ResponseCode = 6
	ResultItemAlreadyOwned   ResponseCode = 7
)

// ResponseCodes lists the known vendor response codes in code order.
var ResponseCodes = []ResponseCode{
	ResultOK,
	ResultUserCanceled,
	ResultServiceUnavailable,
	ResultBillingUnavailable,
	ResultItemUnavailable,
	ResultDeveloperError,
	ResultError,
	ResultItemAlreadyOwned,
}

func (c ResponseCode) String() string {
	switch c {
	case ResultOK:
		return "RESULT_OK"
	case ResultUserCanceled:
		return "RESULT_USER_CANCELED"
	case ResultServiceUnavailable:
		return "RESULT_SERVICE_UNAVAILABLE"
	case ResultBillingUnavailable:
		return "RESULT_BILLING_UNAVAILABLE"
	case ResultItemUnavailable:
		return "RESULT_ITEM_UNAVAILABLE"
	case ResultDeveloperError:
		return "RESULT_DEVELOPER_ERROR"
	case ResultError:
		return "RESULT_ERROR"
	case ResultItemAlreadyOwned:
		return "BILLING_RESPONSE_RESULT_ITEM_ALREADY_OWNED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(c))
	}
}

// Known reports whether c is one of the codes Google Play defines.
func (c ResponseCode) Known() bool {
	return c >= ResultOK && c <= ResultItemAlreadyOwned
}
