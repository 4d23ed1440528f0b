package create_enrollment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SalonBookingService/internal/service/enrollments"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры записи"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgListingNotFound    = "мастер не предлагает эту процедуру"
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

// Handle POST /api/v1/users/{userId}/user-procedures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /users/{id}/user-procedures - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /users/{id}/user-procedures - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if authUserID != userID {
		h.logger.Warn("POST /users/{id}/user-procedures - Access denied: user_id=%d, auth_user_id=%d",
			userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req CreateEnrollmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{id}/user-procedures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, enrollments.ErrInvalidInput):
			h.logger.Warn("POST /users/{id}/user-procedures - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, enrollments.ErrListingNotFound):
			h.logger.Warn("POST /users/{id}/user-procedures - Listing not found: master_id=%d, procedure_id=%d",
				req.MasterID, req.ProcedureID)
			handlers.RespondNotFound(w, msgListingNotFound)

		default:
			h.logger.Error("POST /users/{id}/user-procedures - Failed to create enrollment: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{id}/user-procedures - Enrollment created: id=%d, user_id=%d, master_id=%d, procedure_id=%d",
		result.ID, userID, req.MasterID, req.ProcedureID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
