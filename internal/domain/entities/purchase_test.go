package entities

import "testing"

func TestPurchaseResult_IsError(t *testing.T) {
	errorsExpected := map[PurchaseResult]bool{
		PurchaseResultOk:                       false,
		PurchaseResultUnavailable:              false,
		PurchaseResultErrorUnknown:             true,
		PurchaseResultErrorInvalidProduct:      true,
		PurchaseResultErrorConnectionFailed:    true,
		PurchaseResultErrorCancelled:           true,
		PurchaseResultErrorProductAlreadyOwned: true,
	}

	for r, want := range errorsExpected {
		if got := r.IsError(); got != want {
			t.Fatalf("%s: expected IsError()=%v, got %v", r, want, got)
		}
	}
}
