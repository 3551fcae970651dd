package domain

import "time"

// Booking represents a reserved swag day in the system.
// Бронирования создаются один раз и никогда не редактируются и не
// отменяются сервисом (append-only), история читается целиком для
// построения снапшота доступности.
type Booking struct {
	ID          int64
	BookingDate Date
	CompanyName string
	Email       string
	Description *string

	CreatedAt time.Time
}
