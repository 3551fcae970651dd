package create_booking

import (
	"context"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityCache интерфейс кэша доступности.
// Usecase-у нужен только принудительный refresh: при конфликте дат
// собственный insert отклонен и уведомления по нему не будет
type AvailabilityCache interface {
	Refresh(ctx context.Context) error
}

// SelectionState интерфейс владельца выбранной даты
type SelectionState interface {
	Selected() *domain.Date
	ClearSelection()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
