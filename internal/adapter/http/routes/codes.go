package routes

import (
	"billing_codes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCodes     = "/codes"
	PathProviders = "/providers"
	PathBundles   = "/bundles"
	PathConstants = "/constants"
)

func addCodeRoutes(rg *gin.RouterGroup, h *handlers.TranslationHandler) {
	codes := rg.Group(PathCodes)
	{
		codes.GET("/response", h.ListResponseCodes)
		codes.GET("/response/:code", h.GetResponseCode)
		codes.GET("/purchase-state", h.ListPurchaseStates)
		codes.GET("/purchase-state/:state", h.GetPurchaseState)
	}

	rg.GET(PathProviders+"/:provider/status/:status", h.GetProviderStatus)
	rg.POST(PathBundles+"/response", h.TranslateResponseBundle)
	rg.GET(PathConstants, h.GetConstants)
}
