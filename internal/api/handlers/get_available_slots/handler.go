package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/slots"
	"github.com/m04kA/SalonBookingService/internal/service/slots/models"
	"github.com/m04kA/SalonBookingService/pkg/ptr"
)

const (
	msgInvalidMasterID    = "некорректный параметр masterId"
	msgInvalidProcedureID = "некорректный параметр procedureId"
	msgInvalidDate        = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры запроса"
	msgNoSlotsAvailable   = "свободных слотов на выбранную дату нет"
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

// Handle GET /api/v1/time-slots/available?masterId={id}&procedureId={id}&date={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	masterID, err := strconv.ParseInt(query.Get("masterId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /time-slots/available - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	procedureID, err := strconv.ParseInt(query.Get("procedureId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /time-slots/available - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /time-slots/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListAvailable(r.Context(), &models.ListSlotsRequest{
		MasterID:    ptr.Ptr(masterID),
		ProcedureID: ptr.Ptr(procedureID),
		Date:        ptr.Ptr(date),
	})
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /time-slots/available - Invalid input: master_id=%d, error=%v", masterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /time-slots/available - Failed to get slots: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Пустой список доступных слотов отдаем как 404
	if len(result.Slots) == 0 {
		h.logger.Info("GET /time-slots/available - No available slots: master_id=%d, procedure_id=%d, date=%s",
			masterID, procedureID, date.Format(domain.DateFormat))
		handlers.RespondNotFound(w, msgNoSlotsAvailable)
		return
	}

	h.logger.Info("GET /time-slots/available - Retrieved %d available slots: master_id=%d, procedure_id=%d",
		len(result.Slots), masterID, procedureID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
