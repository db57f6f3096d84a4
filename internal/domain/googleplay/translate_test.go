package googleplay

import (
	"math"
	"sync"
	"testing"

	"billing_codes/internal/domain/entities"
)

func TestTranslatePurchaseState(t *testing.T) {
	cases := []struct {
		name  string
		state int
		want  entities.PurchaseState
	}{
		{"purchased", 0, entities.PurchaseStateCompleted},
		{"canceled", 1, entities.PurchaseStateFailed},
		{"refunded", 2, entities.PurchaseStateRefunded},
		{"on hold sentinel", PurchaseStateOnHold, entities.PurchaseStateFailed},
		{"next unused value", 3, entities.PurchaseStateFailed},
		{"large positive", 1 << 20, entities.PurchaseStateFailed},
		{"max int", math.MaxInt, entities.PurchaseStateFailed},
		{"min int", math.MinInt, entities.PurchaseStateFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TranslatePurchaseState(tc.state); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestTranslateResponseCode(t *testing.T) {
	cases := []struct {
		name string
		code int
		want entities.PurchaseResult
	}{
		{"ok", 0, entities.PurchaseResultOk},
		{"user canceled", 1, entities.PurchaseResultErrorCancelled},
		{"service unavailable", 2, entities.PurchaseResultErrorConnectionFailed},
		{"billing unavailable", 3, entities.PurchaseResultUnavailable},
		{"item unavailable", 4, entities.PurchaseResultErrorInvalidProduct},
		{"developer error", 5, entities.PurchaseResultErrorUnknown},
		{"error", 6, entities.PurchaseResultErrorUnknown},
		{"item already owned", 7, entities.PurchaseResultErrorProductAlreadyOwned},
		{"invalid response code sentinel", InvalidResponseCode, entities.PurchaseResultErrorUnknown},
		{"next unused value", 8, entities.PurchaseResultErrorUnknown},
		{"max int", math.MaxInt, entities.PurchaseResultErrorUnknown},
		{"min int", math.MinInt, entities.PurchaseResultErrorUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TranslateResponseCode(tc.code); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestTranslate_UnknownValuesFallBack(t *testing.T) {
	for v := -50; v <= 50; v++ {
		if v < 0 || v > 2 {
			if got := TranslatePurchaseState(v); got != entities.PurchaseStateFailed {
				t.Fatalf("state %d: expected failed, got %s", v, got)
			}
		}
		if v < 0 || v > 7 {
			if got := TranslateResponseCode(v); got != entities.PurchaseResultErrorUnknown {
				t.Fatalf("code %d: expected error_unknown, got %s", v, got)
			}
		}
	}
}

func TestTranslate_ConcurrentCallsAreStable(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if TranslateResponseCode(7) != entities.PurchaseResultErrorProductAlreadyOwned {
					errs <- "response code 7 changed"
					return
				}
				if TranslatePurchaseState(2) != entities.PurchaseStateRefunded {
					errs <- "purchase state 2 changed"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Fatal(msg)
	}
}

func TestCodeNames(t *testing.T) {
	if ResultItemAlreadyOwned.String() != "BILLING_RESPONSE_RESULT_ITEM_ALREADY_OWNED" {
		t.Fatalf("unexpected name: %s", ResultItemAlreadyOwned)
	}
	if ResponseCode(42).String() != "UNKNOWN(42)" {
		t.Fatalf("unexpected name: %s", ResponseCode(42))
	}
	if PurchaseStateCanceled.String() != "CANCELED" {
		t.Fatalf("unexpected name: %s", PurchaseStateCanceled)
	}
	if PurchaseState(-1).String() != "UNKNOWN(-1)" {
		t.Fatalf("unexpected name: %s", PurchaseState(-1))
	}
	if ResponseCode(8).Known() || !ResultError.Known() {
		t.Fatalf("unexpected Known() result")
	}
	if PurchaseState(3).Known() || !PurchaseStateRefunded.Known() {
		t.Fatalf("unexpected Known() result")
	}
	if len(ResponseCodes) != 8 || len(PurchaseStates) != 3 {
		t.Fatalf("unexpected table sizes: %d codes, %d states", len(ResponseCodes), len(PurchaseStates))
	}
}
