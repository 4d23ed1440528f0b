package get_time_slots

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/slots"
	"github.com/m04kA/SalonBookingService/internal/service/slots/models"
)

const (
	msgInvalidMasterID    = "некорректный параметр masterId"
	msgInvalidProcedureID = "некорректный параметр procedureId"
	msgInvalidDate        = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-slots?masterId={id}&procedureId={id}&date={date}
// Все параметры опциональны: без них возвращается полное расписание.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	masterID, err := parseOptionalID(query, "masterId")
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	procedureID, err := parseOptionalID(query, "procedureId")
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	date, err := parseOptionalDate(query, "date")
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListSlotsRequest{
		MasterID:    masterID,
		ProcedureID: procedureID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /time-slots - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /time-slots - Failed to get slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-slots - Retrieved %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseOptionalID возвращает nil для отсутствующего параметра
func parseOptionalID(query url.Values, name string) (*int64, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func parseOptionalDate(query url.Values, name string) (*time.Time, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
