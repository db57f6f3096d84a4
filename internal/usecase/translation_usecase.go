package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"billing_codes/internal/domain/entities"
	"billing_codes/internal/domain/googleplay"
	"billing_codes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCode     = errors.New("invalid vendor code")
	ErrUnknownProvider = errors.New("unknown payment provider")
)

// ITranslationUseCase resolves vendor billing codes into the internal
// purchase vocabulary.
//
// Unknown integer codes are not errors: they resolve through the fallback
// (Failed / ErrorUnknown). Errors are returned only for input that is not a
// code at all.

type ITranslationUseCase interface {
	TranslateResponseCode(ctx context.Context, raw string) (entities.CodeTranslation, error)
	TranslatePurchaseState(ctx context.Context, raw string) (entities.CodeTranslation, error)
	TranslateProviderStatus(ctx context.Context, provider, status string) (entities.CodeTranslation, error)
	TranslateResponseBundle(ctx context.Context, bundle map[string]any) (entities.BundleTranslation, error)
	ListResponseCodes(ctx context.Context) []entities.CodeTranslation
	ListPurchaseStates(ctx context.Context) []entities.CodeTranslation
	Constants(ctx context.Context) googleplay.ConstantTable
}

type TranslationUseCase struct {
	logger      *zap.Logger
	translators map[string]interfaces.IStatusTranslator
}

var _ ITranslationUseCase = (*TranslationUseCase)(nil)

func NewTranslationUseCase(logger *zap.Logger, translators ...interfaces.IStatusTranslator) *TranslationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	byProvider := make(map[string]interfaces.IStatusTranslator, len(translators))
	for _, tr := range translators {
		if tr == nil {
			continue
		}
		byProvider[strings.ToLower(tr.Provider())] = tr
	}
	return &TranslationUseCase{logger: logger, translators: byProvider}
}

func (u *TranslationUseCase) TranslateResponseCode(ctx context.Context, raw string) (entities.CodeTranslation, error) {
	code, err := parseCode(raw)
	if err != nil {
		u.logger.Warn("[codes][usecase] invalid response code", zap.String("raw", raw))
		return entities.CodeTranslation{}, err
	}
	t := googleplay.DescribeResponseCode(code)
	if !t.Known {
		u.logger.Info("[codes][usecase] unknown response code, using fallback",
			zap.Int("code", code), zap.String("result", string(t.Result)))
	}
	return t, nil
}

func (u *TranslationUseCase) TranslatePurchaseState(ctx context.Context, raw string) (entities.CodeTranslation, error) {
	state, err := parseCode(raw)
	if err != nil {
		u.logger.Warn("[codes][usecase] invalid purchase state", zap.String("raw", raw))
		return entities.CodeTranslation{}, err
	}
	t := googleplay.DescribePurchaseState(state)
	if !t.Known {
		u.logger.Info("[codes][usecase] unknown purchase state, using fallback",
			zap.Int("state", state), zap.String("result", string(t.State)))
	}
	return t, nil
}

func (u *TranslationUseCase) TranslateProviderStatus(ctx context.Context, provider, status string) (entities.CodeTranslation, error) {
	tr, ok := u.translators[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		u.logger.Warn("[codes][usecase] unknown provider", zap.String("provider", provider))
		return entities.CodeTranslation{}, ErrUnknownProvider
	}
	t, ok := tr.TranslateStatus(status)
	if !ok {
		u.logger.Warn("[codes][usecase] invalid provider status",
			zap.String("provider", provider), zap.String("status", status))
		return entities.CodeTranslation{}, ErrInvalidCode
	}
	return t, nil
}

// TranslateResponseBundle reads the extras of a RESPONSE_CODE broadcast.
// Missing or unreadable values take the invalid sentinels, so a bundle
// without a response code translates to ErrorUnknown.
func (u *TranslationUseCase) TranslateResponseBundle(ctx context.Context, bundle map[string]any) (entities.BundleTranslation, error) {
	requestID := googleplay.InvalidRequestID
	if v, ok := bundleInt(bundle, googleplay.ExtraRequestID); ok {
		requestID = v
	}

	responseCode := googleplay.InvalidResponseCode
	if v, ok := bundleInt(bundle, googleplay.ExtraResponseCode); ok && v >= math.MinInt32 && v <= math.MaxInt32 {
		responseCode = int(v)
	}

	out := entities.BundleTranslation{
		RequestID:    requestID,
		ResponseCode: responseCode,
		Translation:  googleplay.DescribeResponseCode(responseCode),
	}
	u.logger.Info("[codes][usecase] response bundle translated",
		zap.Int64("request_id", requestID),
		zap.Int("response_code", responseCode),
		zap.String("result", string(out.Translation.Result)))
	return out, nil
}

func (u *TranslationUseCase) ListResponseCodes(ctx context.Context) []entities.CodeTranslation {
	out := make([]entities.CodeTranslation, 0, len(googleplay.ResponseCodes))
	for _, c := range googleplay.ResponseCodes {
		out = append(out, googleplay.DescribeResponseCode(int(c)))
	}
	return out
}

func (u *TranslationUseCase) ListPurchaseStates(ctx context.Context) []entities.CodeTranslation {
	out := make([]entities.CodeTranslation, 0, len(googleplay.PurchaseStates))
	for _, s := range googleplay.PurchaseStates {
		out = append(out, googleplay.DescribePurchaseState(int(s)))
	}
	return out
}

func (u *TranslationUseCase) Constants(ctx context.Context) googleplay.ConstantTable {
	return googleplay.Constants()
}

func parseCode(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidCode
	}
	return v, nil
}

// bundleInt reads an integer extra. JSON bodies deliver numbers as float64 or
// json.Number; senders that stringify extras are accepted too.
func bundleInt(bundle map[string]any, key string) (int64, bool) {
	v, ok := bundle[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
