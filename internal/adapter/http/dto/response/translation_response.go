package response

import "billing_codes/internal/domain/entities"

type CodeTranslationResponse struct {
	Provider    string `json:"provider"`
	Kind        string `json:"kind"`
	VendorCode  string `json:"vendor_code"`
	VendorLabel string `json:"vendor_label"`
	Known       bool   `json:"known"`
	Internal    string `json:"internal"`
	IsError     bool   `json:"is_error"`
}

func FromCodeTranslation(t entities.CodeTranslation) CodeTranslationResponse {
	res := CodeTranslationResponse{
		Provider:    t.Provider,
		Kind:        t.Kind,
		VendorCode:  t.VendorCode,
		VendorLabel: t.VendorLabel,
		Known:       t.Known,
	}
	if t.Kind == entities.TranslationKindResponseCode {
		res.Internal = string(t.Result)
		res.IsError = t.Result.IsError()
	} else {
		res.Internal = string(t.State)
		res.IsError = t.State == entities.PurchaseStateFailed
	}
	return res
}

type CodeTableResponse struct {
	Kind     string                    `json:"kind"`
	Fallback string                    `json:"fallback"`
	Codes    []CodeTranslationResponse `json:"codes"`
}

func FromCodeTable(kind string, fallback string, items []entities.CodeTranslation) CodeTableResponse {
	codes := make([]CodeTranslationResponse, 0, len(items))
	for _, it := range items {
		codes = append(codes, FromCodeTranslation(it))
	}
	return CodeTableResponse{Kind: kind, Fallback: fallback, Codes: codes}
}

type BundleTranslationResponse struct {
	RequestID    int64                   `json:"request_id"`
	ResponseCode int                     `json:"response_code"`
	Translation  CodeTranslationResponse `json:"translation"`
}

func FromBundleTranslation(b entities.BundleTranslation) BundleTranslationResponse {
	return BundleTranslationResponse{
		RequestID:    b.RequestID,
		ResponseCode: b.ResponseCode,
		Translation:  FromCodeTranslation(b.Translation),
	}
}
