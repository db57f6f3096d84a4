package googleplay

import (
	"testing"

	"billing_codes/internal/domain/entities"
)

func TestDescribeResponseCode(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		got := DescribeResponseCode(3)
		if got.Provider != Provider || got.Kind != entities.TranslationKindResponseCode {
			t.Fatalf("unexpected header: %+v", got)
		}
		if got.VendorCode != "3" || got.VendorLabel != "RESULT_BILLING_UNAVAILABLE" || !got.Known {
			t.Fatalf("unexpected vendor side: %+v", got)
		}
		if got.Result != entities.PurchaseResultUnavailable || got.State != "" {
			t.Fatalf("unexpected internal side: %+v", got)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		got := DescribeResponseCode(-1)
		if got.Known || got.VendorLabel != "UNKNOWN(-1)" {
			t.Fatalf("unexpected vendor side: %+v", got)
		}
		if got.Result != entities.PurchaseResultErrorUnknown {
			t.Fatalf("expected error_unknown, got %s", got.Result)
		}
	})
}

func TestDescribePurchaseState(t *testing.T) {
	got := DescribePurchaseState(0)
	if got.Kind != entities.TranslationKindPurchaseState || got.VendorLabel != "PURCHASED" || !got.Known {
		t.Fatalf("unexpected translation: %+v", got)
	}
	if got.State != entities.PurchaseStateCompleted || got.Result != "" {
		t.Fatalf("unexpected internal side: %+v", got)
	}

	unknown := DescribePurchaseState(9)
	if unknown.Known || unknown.State != entities.PurchaseStateFailed {
		t.Fatalf("unexpected fallback: %+v", unknown)
	}
}
