package get_products

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle GET /api/v1/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /products - Returned %d products", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
