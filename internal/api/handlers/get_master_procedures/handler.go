package get_master_procedures

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/catalog"
)

const (
	msgInvalidMasterID = "некорректный ID мастера"
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

// Handle GET /api/v1/masters/{masterId}/procedures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/procedures - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	result, err := h.service.ListMasterProcedures(r.Context(), masterID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /masters/{id}/procedures - Invalid input: master_id=%d, error=%v", masterID, err)
			handlers.RespondBadRequest(w, msgInvalidMasterID)

		default:
			h.logger.Error("GET /masters/{id}/procedures - Failed to get listings: master_id=%d, error=%v",
				masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /masters/{id}/procedures - Retrieved %d listings: master_id=%d",
		len(result.Listings), masterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
