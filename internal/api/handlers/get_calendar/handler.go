package get_calendar

import (
	"net/http"

	"github.com/m04kA/SwagDay-BookingService/internal/api/handlers"
	getCalendar "github.com/m04kA/SwagDay-BookingService/internal/usecase/get_calendar"
)

const msgInvalidMonth = "invalid month format, expected YYYY-MM"

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - invalid month param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Month: month})
	if err != nil {
		h.logger.Error("GET /calendar - failed to build grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
