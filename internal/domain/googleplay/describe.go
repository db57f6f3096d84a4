package googleplay

import (
	"strconv"

	"billing_codes/internal/domain/entities"
)

// DescribePurchaseState translates a vendor purchase state and keeps the
// vendor side of the mapping alongside the internal value.
func DescribePurchaseState(vendorState int) entities.CodeTranslation {
	s := PurchaseState(vendorState)
	return entities.CodeTranslation{
		Provider:    Provider,
		Kind:        entities.TranslationKindPurchaseState,
		VendorCode:  strconv.Itoa(vendorState),
		VendorLabel: s.String(),
		Known:       s.Known(),
		State:       TranslatePurchaseState(vendorState),
	}
}

// DescribeResponseCode is the response-code counterpart of DescribePurchaseState.
func DescribeResponseCode(vendorCode int) entities.CodeTranslation {
	c := ResponseCode(vendorCode)
	return entities.CodeTranslation{
		Provider:    Provider,
		Kind:        entities.TranslationKindResponseCode,
		VendorCode:  strconv.Itoa(vendorCode),
		VendorLabel: c.String(),
		Known:       c.Known(),
		Result:      TranslateResponseCode(vendorCode),
	}
}
