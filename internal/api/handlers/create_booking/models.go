package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SwagDay-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Дата в запросе отсутствует - бронируется текущая выбранная дата
type CreateBookingRequest struct {
	CompanyName string  `json:"companyName"`
	Email       string  `json:"email"`
	Description *string `json:"description,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	BookingDate string  `json:"bookingDate"`
	CompanyName string  `json:"companyName"`
	Email       string  `json:"email"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CompanyName: r.CompanyName,
		Email:       r.Email,
		Description: r.Description,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		BookingDate: resp.BookingDate.String(),
		CompanyName: resp.CompanyName,
		Email:       resp.Email,
		Description: resp.Description,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
