package get_procedures

import (
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/procedures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListProcedures(r.Context())
	if err != nil {
		h.logger.Error("GET /procedures - Failed to get procedures: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /procedures - Retrieved %d procedures", len(result.Procedures))
	handlers.RespondJSON(w, http.StatusOK, result)
}
