package response

import (
	"testing"

	"billing_codes/internal/domain/entities"
)

func TestFromCodeTranslation(t *testing.T) {
	t.Run("response code", func(t *testing.T) {
		res := FromCodeTranslation(entities.CodeTranslation{
			Provider:    "google_play",
			Kind:        entities.TranslationKindResponseCode,
			VendorCode:  "1",
			VendorLabel: "RESULT_USER_CANCELED",
			Known:       true,
			Result:      entities.PurchaseResultErrorCancelled,
		})
		if res.Internal != "error_cancelled" || !res.IsError || !res.Known {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("unavailable is not an error", func(t *testing.T) {
		res := FromCodeTranslation(entities.CodeTranslation{Kind: entities.TranslationKindResponseCode, Result: entities.PurchaseResultUnavailable})
		if res.Internal != "unavailable" || res.IsError {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("purchase state", func(t *testing.T) {
		res := FromCodeTranslation(entities.CodeTranslation{Kind: entities.TranslationKindPurchaseState, State: entities.PurchaseStateRefunded})
		if res.Internal != "refunded" || res.IsError {
			t.Fatalf("unexpected response: %+v", res)
		}
		res = FromCodeTranslation(entities.CodeTranslation{Kind: entities.TranslationKindPurchaseState, State: entities.PurchaseStateFailed})
		if !res.IsError {
			t.Fatalf("expected failed state to be flagged: %+v", res)
		}
	})
}

func TestFromBundleTranslation(t *testing.T) {
	res := FromBundleTranslation(entities.BundleTranslation{
		RequestID:    -1,
		ResponseCode: -1,
		Translation:  entities.CodeTranslation{Kind: entities.TranslationKindResponseCode, Result: entities.PurchaseResultErrorUnknown},
	})
	if res.RequestID != -1 || res.ResponseCode != -1 || res.Translation.Internal != "error_unknown" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromCodeTable(t *testing.T) {
	res := FromCodeTable("purchase_state", "failed", []entities.CodeTranslation{
		{Kind: entities.TranslationKindPurchaseState, State: entities.PurchaseStateCompleted},
		{Kind: entities.TranslationKindPurchaseState, State: entities.PurchaseStateFailed},
	})
	if res.Kind != "purchase_state" || res.Fallback != "failed" || len(res.Codes) != 2 {
		t.Fatalf("unexpected table: %+v", res)
	}
	if res.Codes[0].Internal != "completed" {
		t.Fatalf("unexpected first code: %+v", res.Codes[0])
	}
}
