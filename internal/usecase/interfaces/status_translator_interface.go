package interfaces

import "billing_codes/internal/domain/entities"

//go:generate mockgen -source=status_translator_interface.go -destination=mocks/mock_status_translator.go -package=mock_interfaces

// IStatusTranslator abstracts a payment provider's purchase status vocabulary
// (e.g. Google Play, Mercado Pago).
//
// ok is false when status is not in the provider's format at all (for example
// a non-numeric Google Play state). Well-formed but unknown statuses are
// translated through the provider's fallback and reported with Known=false.
type IStatusTranslator interface {
	Provider() string
	TranslateStatus(status string) (translation entities.CodeTranslation, ok bool)
}
