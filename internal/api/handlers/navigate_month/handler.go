package navigate_month

import (
	"errors"
	"net/http"

	"github.com/m04kA/SwagDay-BookingService/internal/api/handlers"
	"github.com/m04kA/SwagDay-BookingService/internal/service/calendarstate"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDirection   = "direction must be \"prev\" or \"next\""
)

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Direction string `json:"direction"`
}

// NavigateResponse HTTP response model
type NavigateResponse struct {
	Month string `json:"month"` // YYYY-MM
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

// Handle POST /api/v1/calendar/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/navigate - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	month, err := h.state.Navigate(req.Direction)
	if err != nil {
		if errors.Is(err, calendarstate.ErrInvalidDirection) {
			h.logger.Warn("POST /calendar/navigate - invalid direction %q", req.Direction)
			handlers.RespondBadRequest(w, msgInvalidDirection)
			return
		}
		h.logger.Error("POST /calendar/navigate - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NavigateResponse{Month: month.String()})
}
