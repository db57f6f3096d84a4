package entities

// CodeTranslation is a single vendor code resolved to the internal vocabulary.
//
// Exactly one of State or Result is set, depending on the kind of code that
// was translated. Known is false when the vendor value fell through to the
// fallback branch.

type CodeTranslation struct {
	Provider    string         `json:"provider"`
	Kind        string         `json:"kind"`
	VendorCode  string         `json:"vendor_code"`
	VendorLabel string         `json:"vendor_label"`
	Known       bool           `json:"known"`
	State       PurchaseState  `json:"state,omitempty"`
	Result      PurchaseResult `json:"result,omitempty"`
}

const (
	TranslationKindPurchaseState = "purchase_state"
	TranslationKindResponseCode  = "response_code"
)

// BundleTranslation is the outcome of reading a RESPONSE_CODE broadcast.
type BundleTranslation struct {
	RequestID    int64           `json:"request_id"`
	ResponseCode int             `json:"response_code"`
	Translation  CodeTranslation `json:"translation"`
}
