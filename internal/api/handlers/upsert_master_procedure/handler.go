package upsert_master_procedure

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры прейскуранта"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgMasterNotFound     = "мастер не найден"
	msgNotAMaster         = "аккаунт не является мастером"
	msgProcedureNotFound  = "процедура не найдена"
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

// Handle PUT /api/v1/masters/{masterId}/procedures/{procedureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /masters/{id}/procedures - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	procedureID, err := strconv.ParseInt(vars["procedureId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /masters/{id}/procedures - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /masters/{id}/procedures - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Прейскурант редактирует только сам мастер
	if authUserID != masterID {
		h.logger.Warn("PUT /masters/{id}/procedures - Access denied: master_id=%d, auth_user_id=%d",
			masterID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpsertListingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /masters/{id}/procedures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertListing(r.Context(), req.ToServiceRequest(masterID, procedureID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /masters/{id}/procedures - Invalid input: master_id=%d, error=%v", masterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalog.ErrMasterNotFound):
			h.logger.Warn("PUT /masters/{id}/procedures - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, catalog.ErrNotAMaster):
			h.logger.Warn("PUT /masters/{id}/procedures - Not a master: master_id=%d", masterID)
			handlers.RespondConflict(w, msgNotAMaster)

		case errors.Is(err, catalog.ErrProcedureNotFound):
			h.logger.Warn("PUT /masters/{id}/procedures - Procedure not found: procedure_id=%d", procedureID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		default:
			h.logger.Error("PUT /masters/{id}/procedures - Failed to upsert listing: master_id=%d, error=%v",
				masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /masters/{id}/procedures - Listing upserted: master_id=%d, procedure_id=%d, price=%.2f",
		result.MasterID, result.ProcedureID, result.Price)
	handlers.RespondJSON(w, http.StatusOK, result)
}
