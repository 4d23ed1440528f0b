package generate_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	generateSlots "github.com/m04kA/SalonBookingService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные параметры генерации слотов"
	msgInvalidWindow      = "рабочее окно не вмещает ни одного слота"
	msgMasterNotFound     = "мастер не найден"
	msgNotAMaster         = "аккаунт не является мастером"
	msgListingNotFound    = "мастер не предлагает эту процедуру"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /time-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /time-slots - Invalid input: master_id=%d, procedure_id=%d, error=%v",
				req.MasterID, req.ProcedureID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, generateSlots.ErrInvalidScheduleWindow):
			h.logger.Warn("POST /time-slots - Invalid schedule window: master_id=%d, window=%s-%s",
				req.MasterID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, generateSlots.ErrMasterNotFound):
			h.logger.Warn("POST /time-slots - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, generateSlots.ErrNotAMaster):
			h.logger.Warn("POST /time-slots - Not a master: master_id=%d", req.MasterID)
			handlers.RespondConflict(w, msgNotAMaster)

		case errors.Is(err, generateSlots.ErrListingNotFound):
			h.logger.Warn("POST /time-slots - Listing not found: master_id=%d, procedure_id=%d",
				req.MasterID, req.ProcedureID)
			handlers.RespondNotFound(w, msgListingNotFound)

		default:
			h.logger.Error("POST /time-slots - Failed to generate slots: master_id=%d, procedure_id=%d, error=%v",
				req.MasterID, req.ProcedureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-slots - Generated %d slots: master_id=%d, procedure_id=%d, date=%s",
		len(result.Slots), req.MasterID, req.ProcedureID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
