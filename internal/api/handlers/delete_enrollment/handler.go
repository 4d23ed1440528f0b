package delete_enrollment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SalonBookingService/internal/service/enrollments"
	"github.com/m04kA/SalonBookingService/internal/service/enrollments/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidMasterID    = "некорректный параметр masterId"
	msgInvalidProcedureID = "некорректный параметр procedureId"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "запись не найдена"
)

type Handler struct {
	service EnrollmentService
	logger  Logger
}

func NewHandler(service EnrollmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/{userId}/user-procedures?masterId={id}&procedureId={id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/user-procedures - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /users/{id}/user-procedures - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if authUserID != userID {
		h.logger.Warn("DELETE /users/{id}/user-procedures - Access denied: user_id=%d, auth_user_id=%d",
			userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	query := r.URL.Query()

	masterID, err := strconv.ParseInt(query.Get("masterId"), 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/user-procedures - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	procedureID, err := strconv.ParseInt(query.Get("procedureId"), 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/user-procedures - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	err = h.service.Delete(r.Context(), &models.DeleteEnrollmentRequest{
		UserID:      userID,
		MasterID:    masterID,
		ProcedureID: procedureID,
	})
	if err != nil {
		switch {
		case errors.Is(err, enrollments.ErrInvalidInput):
			h.logger.Warn("DELETE /users/{id}/user-procedures - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		case errors.Is(err, enrollments.ErrEnrollmentNotFound):
			h.logger.Warn("DELETE /users/{id}/user-procedures - Enrollment not found: user_id=%d, master_id=%d, procedure_id=%d",
				userID, masterID, procedureID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /users/{id}/user-procedures - Failed to delete enrollment: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{id}/user-procedures - Enrollment deleted: user_id=%d, master_id=%d, procedure_id=%d",
		userID, masterID, procedureID)
	handlers.RespondNoContent(w)
}
