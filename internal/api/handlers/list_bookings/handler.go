package list_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/SwagDay-BookingService/internal/api/handlers"
	"github.com/m04kA/SwagDay-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP-модель бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	BookingDate string  `json:"bookingDate"`
	CompanyName string  `json:"companyName"`
	Email       string  `json:"email"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// BookingListResponse HTTP-модель списка бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	out := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(resp.Bookings)),
		Total:    resp.Total,
	}
	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:          b.ID,
			BookingDate: b.BookingDate.String(),
			CompanyName: b.CompanyName,
			Email:       b.Email,
			Description: b.Description,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
