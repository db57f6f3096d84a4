package handlers

import (
	"errors"
	"net/http"

	request "billing_codes/internal/adapter/http/dto/request"
	response "billing_codes/internal/adapter/http/dto/response"
	"billing_codes/internal/domain/entities"
	"billing_codes/internal/usecase"
	"billing_codes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TranslationHandler exposes the code translator over HTTP. All routes are
// read-only lookups.

type TranslationHandler struct {
	usecase usecase.ITranslationUseCase
	logger  *zap.Logger
}

func NewTranslationHandler(uc usecase.ITranslationUseCase, logger *zap.Logger) *TranslationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationHandler{usecase: uc, logger: logger}
}

// ListResponseCodes godoc
// @Summary      Google Play response code table
// @Tags         codes
// @Produce      json
// @Success      200  {object}  response.CodeTableResponse
// @Router       /codes/response [get]
func (h *TranslationHandler) ListResponseCodes(c *gin.Context) {
	items := h.usecase.ListResponseCodes(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCodeTable(entities.TranslationKindResponseCode, string(entities.PurchaseResultErrorUnknown), items))
}

// GetResponseCode godoc
// @Summary      Translate a Google Play response code
// @Tags         codes
// @Produce      json
// @Param        code  path      int  true  "Vendor response code"
// @Success      200   {object}  response.CodeTranslationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /codes/response/{code} [get]
func (h *TranslationHandler) GetResponseCode(c *gin.Context) {
	code := c.Param("code")
	t, err := h.usecase.TranslateResponseCode(c.Request.Context(), code)
	if err != nil {
		h.logger.Info("[codes][handler] response code lookup failed", zap.String("code", code), zap.Error(err))
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCodeTranslation(t))
}

// ListPurchaseStates godoc
// @Summary      Google Play purchase state table
// @Tags         codes
// @Produce      json
// @Success      200  {object}  response.CodeTableResponse
// @Router       /codes/purchase-state [get]
func (h *TranslationHandler) ListPurchaseStates(c *gin.Context) {
	items := h.usecase.ListPurchaseStates(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCodeTable(entities.TranslationKindPurchaseState, string(entities.PurchaseStateFailed), items))
}

// GetPurchaseState godoc
// @Summary      Translate a Google Play purchase state
// @Tags         codes
// @Produce      json
// @Param        state  path      int  true  "Vendor purchase state"
// @Success      200    {object}  response.CodeTranslationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /codes/purchase-state/{state} [get]
func (h *TranslationHandler) GetPurchaseState(c *gin.Context) {
	state := c.Param("state")
	t, err := h.usecase.TranslatePurchaseState(c.Request.Context(), state)
	if err != nil {
		h.logger.Info("[codes][handler] purchase state lookup failed", zap.String("state", state), zap.Error(err))
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCodeTranslation(t))
}

// GetProviderStatus godoc
// @Summary      Translate a provider purchase status
// @Tags         providers
// @Produce      json
// @Param        provider  path      string  true  "google_play or mercado_pago"
// @Param        status    path      string  true  "Provider status"
// @Success      200       {object}  response.CodeTranslationResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /providers/{provider}/status/{status} [get]
func (h *TranslationHandler) GetProviderStatus(c *gin.Context) {
	provider := c.Param("provider")
	status := c.Param("status")
	t, err := h.usecase.TranslateProviderStatus(c.Request.Context(), provider, status)
	if err != nil {
		h.logger.Info("[codes][handler] provider status lookup failed",
			zap.String("provider", provider), zap.String("status", status), zap.Error(err))
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCodeTranslation(t))
}

// TranslateResponseBundle godoc
// @Summary      Translate the extras of a RESPONSE_CODE broadcast
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        body  body      request.ResponseBundleRequest  false  "Broadcast extras, flat or wrapped in extras"
// @Success      200   {object}  response.BundleTranslationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /bundles/response [post]
func (h *TranslationHandler) TranslateResponseBundle(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("[codes][handler] failed reading bundle body", zap.Error(err))
		h.writeError(c, request.ErrInvalidBundle)
		return
	}
	bundle, err := request.ParseResponseBundle(raw)
	if err != nil {
		h.logger.Info("[codes][handler] invalid bundle body", zap.Int("body_len", len(raw)))
		h.writeError(c, err)
		return
	}

	out, err := h.usecase.TranslateResponseBundle(c.Request.Context(), bundle)
	if err != nil {
		h.logger.Error("[codes][handler] bundle translation failed", zap.Error(err))
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBundleTranslation(out))
}

// GetConstants godoc
// @Summary      Google Play billing constant table
// @Tags         constants
// @Produce      json
// @Success      200  {object}  googleplay.ConstantTable
// @Router       /constants [get]
func (h *TranslationHandler) GetConstants(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Constants(c.Request.Context()))
}

func (h *TranslationHandler) writeError(c *gin.Context, err error) {
	appErr := mapTranslationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTranslationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCode):
		return pkg.NewDomainErrorSimple("INVALID_CODE", "Code must be an integer for this provider", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidBundle):
		return pkg.NewDomainErrorSimple("INVALID_BUNDLE", "Bundle must be a JSON object", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownProvider):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Payment provider not supported", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
