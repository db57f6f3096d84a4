package payments

import (
	"strconv"
	"strings"

	"billing_codes/internal/domain/entities"
	"billing_codes/internal/domain/googleplay"
	"billing_codes/internal/usecase/interfaces"
)

// GooglePlayStatusTranslator exposes Google Play purchase states, which
// arrive as integers in the signed transaction data.
type GooglePlayStatusTranslator struct{}

var _ interfaces.IStatusTranslator = GooglePlayStatusTranslator{}

func NewGooglePlayStatusTranslator() GooglePlayStatusTranslator {
	return GooglePlayStatusTranslator{}
}

func (GooglePlayStatusTranslator) Provider() string { return googleplay.Provider }

func (GooglePlayStatusTranslator) TranslateStatus(status string) (entities.CodeTranslation, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(status))
	if err != nil {
		return entities.CodeTranslation{}, false
	}
	return googleplay.DescribePurchaseState(v), true
}
