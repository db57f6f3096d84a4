package payments

import (
	"strings"

	"billing_codes/internal/domain/entities"
	"billing_codes/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

const MercadoPagoProvider = "mercado_pago"

// Mercado Pago payment statuses, as returned in payment.Response.Status.
const (
	MercadoPagoStatusPending     = "pending"
	MercadoPagoStatusApproved    = "approved"
	MercadoPagoStatusAuthorized  = "authorized"
	MercadoPagoStatusInProcess   = "in_process"
	MercadoPagoStatusInMediation = "in_mediation"
	MercadoPagoStatusRejected    = "rejected"
	MercadoPagoStatusCancelled   = "cancelled"
	MercadoPagoStatusRefunded    = "refunded"
	MercadoPagoStatusChargedBack = "charged_back"
)

var mercadoPagoStates = map[string]entities.PurchaseState{
	MercadoPagoStatusApproved:    entities.PurchaseStateCompleted,
	MercadoPagoStatusPending:     entities.PurchaseStateOnHold,
	MercadoPagoStatusAuthorized:  entities.PurchaseStateOnHold,
	MercadoPagoStatusInProcess:   entities.PurchaseStateOnHold,
	MercadoPagoStatusInMediation: entities.PurchaseStateOnHold,
	MercadoPagoStatusRejected:    entities.PurchaseStateFailed,
	MercadoPagoStatusCancelled:   entities.PurchaseStateFailed,
	MercadoPagoStatusRefunded:    entities.PurchaseStateRefunded,
	MercadoPagoStatusChargedBack: entities.PurchaseStateRefunded,
}

// TranslatePaymentStatus maps a Mercado Pago payment status onto the internal
// purchase state. Unrecognized statuses map to Failed.
func TranslatePaymentStatus(status string) entities.PurchaseState {
	if s, ok := mercadoPagoStates[normalizeStatus(status)]; ok {
		return s
	}
	return entities.PurchaseStateFailed
}

// TranslatePayment translates the status carried by an SDK payment response.
func TranslatePayment(resp *payment.Response) entities.PurchaseState {
	if resp == nil {
		return entities.PurchaseStateFailed
	}
	return TranslatePaymentStatus(resp.Status)
}

// MercadoPagoStatusTranslator exposes the Mercado Pago vocabulary to the
// translation use case.
type MercadoPagoStatusTranslator struct{}

var _ interfaces.IStatusTranslator = MercadoPagoStatusTranslator{}

func NewMercadoPagoStatusTranslator() MercadoPagoStatusTranslator {
	return MercadoPagoStatusTranslator{}
}

func (MercadoPagoStatusTranslator) Provider() string { return MercadoPagoProvider }

func (MercadoPagoStatusTranslator) TranslateStatus(status string) (entities.CodeTranslation, bool) {
	normalized := normalizeStatus(status)
	if normalized == "" {
		return entities.CodeTranslation{}, false
	}
	_, known := mercadoPagoStates[normalized]
	return entities.CodeTranslation{
		Provider:    MercadoPagoProvider,
		Kind:        entities.TranslationKindPurchaseState,
		VendorCode:  normalized,
		VendorLabel: normalized,
		Known:       known,
		State:       TranslatePaymentStatus(normalized),
	}, true
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}
