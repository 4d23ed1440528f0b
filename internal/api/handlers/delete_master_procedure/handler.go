package delete_master_procedure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SalonBookingService/internal/service/catalog"
)

const (
	msgInvalidMasterID    = "некорректный ID мастера"
	msgInvalidProcedureID = "некорректный ID процедуры"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "мастер не предлагает эту процедуру"
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

// Handle DELETE /api/v1/masters/{masterId}/procedures/{procedureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /masters/{id}/procedures/{id} - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	procedureID, err := strconv.ParseInt(vars["procedureId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /masters/{id}/procedures/{id} - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /masters/{id}/procedures/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if authUserID != masterID {
		h.logger.Warn("DELETE /masters/{id}/procedures/{id} - Access denied: master_id=%d, auth_user_id=%d",
			masterID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.DeleteListing(r.Context(), masterID, procedureID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("DELETE /masters/{id}/procedures/{id} - Invalid input: master_id=%d, error=%v",
				masterID, err)
			handlers.RespondBadRequest(w, msgInvalidMasterID)

		case errors.Is(err, catalog.ErrListingNotFound):
			h.logger.Warn("DELETE /masters/{id}/procedures/{id} - Listing not found: master_id=%d, procedure_id=%d",
				masterID, procedureID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /masters/{id}/procedures/{id} - Failed to delete listing: master_id=%d, error=%v",
				masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /masters/{id}/procedures/{id} - Listing deleted: master_id=%d, procedure_id=%d",
		masterID, procedureID)
	handlers.RespondNoContent(w)
}
