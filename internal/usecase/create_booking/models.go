package create_booking

import (
	"time"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования.
// Дата через форму не передается - она берется из текущего выбора
type Request struct {
	CompanyName string  `validate:"required,max=200"`
	Email       string  `validate:"required,email,max=254"`
	Description *string `validate:"omitempty,max=2000"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	BookingDate domain.Date
	CompanyName string
	Email       string
	Description *string
	CreatedAt   time.Time
}
