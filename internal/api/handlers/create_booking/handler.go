package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SwagDay-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SwagDay-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNoDateSelected     = "please select a date from the calendar first"
	msgMissingFields      = "please fill in all required fields"
	msgDateAlreadyBooked  = "this date has already been booked by someone else; the calendar has been refreshed, please pick a different date"
	msgGenericFailure     = "there was an error creating your booking, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateAlreadyBooked):
			// Конфликт дат отличим от прочих ошибок: кэш уже обновлен,
			// выбор сброшен, клиенту нужно выбрать другую дату
			h.logger.Warn("POST /bookings - duplicate date conflict: company=%q", req.CompanyName)
			handlers.RespondConflict(w, msgDateAlreadyBooked)

		case errors.Is(err, createBooking.ErrNoDateSelected):
			h.logger.Warn("POST /bookings - no date selected: company=%q", req.CompanyName)
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - validation failed: company=%q", req.CompanyName)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /bookings - failed to create booking: company=%q, error=%v",
				req.CompanyName, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgGenericFailure)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: booking_id=%d, date=%s",
		result.ID, result.BookingDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
