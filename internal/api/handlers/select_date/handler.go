package select_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SwagDay-BookingService/internal/api/handlers"
	"github.com/m04kA/SwagDay-BookingService/internal/domain"
	"github.com/m04kA/SwagDay-BookingService/internal/service/calendarstate"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast         = "this date is in the past"
	msgDateBooked         = "this date is already booked"
	msgOutsideMonth       = "date is outside the displayed month"
	msgRefreshInProgress  = "availability is being refreshed, try again shortly"
)

// SelectRequest HTTP request model
type SelectRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// SelectResponse HTTP response model
type SelectResponse struct {
	SelectedDate string `json:"selectedDate"`
}

type Handler struct {
	state  CalendarState
	logger Logger
}

func NewHandler(state CalendarState, logger Logger) *Handler {
	return &Handler{
		state:  state,
		logger: logger,
	}
}

// Handle POST /api/v1/calendar/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/select - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /calendar/select - invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.state.Select(date); err != nil {
		switch {
		case errors.Is(err, calendarstate.ErrDateBooked):
			h.logger.Warn("POST /calendar/select - date %s already booked", date)
			handlers.RespondConflict(w, msgDateBooked)

		case errors.Is(err, calendarstate.ErrDateInPast):
			h.logger.Warn("POST /calendar/select - date %s is in the past", date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, calendarstate.ErrOutsideMonth):
			h.logger.Warn("POST /calendar/select - date %s outside displayed month", date)
			handlers.RespondBadRequest(w, msgOutsideMonth)

		case errors.Is(err, calendarstate.ErrRefreshInProgress):
			h.logger.Warn("POST /calendar/select - refresh in progress, selection rejected")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRefreshInProgress)

		default:
			h.logger.Error("POST /calendar/select - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SelectResponse{SelectedDate: date.String()})
}

// HandleClear DELETE /api/v1/calendar/select
func (h *Handler) HandleClear(w http.ResponseWriter, _ *http.Request) {
	h.state.ClearSelection()
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
