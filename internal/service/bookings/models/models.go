package models

import (
	"time"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

// BookingResponse представление бронирования для чтения
type BookingResponse struct {
	ID          int64
	BookingDate domain.Date
	CompanyName string
	Email       string
	Description *string
	CreatedAt   time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// FromDomainBooking конвертирует доменную модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		BookingDate: b.BookingDate,
		CompanyName: b.CompanyName,
		Email:       b.Email,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookings конвертирует список доменных моделей в ответ сервиса
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]*BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(b))
	}
	return resp
}
