package availability

import (
	"context"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

// ChangeStream поток сигналов "таблица бронирований изменилась"
type ChangeStream interface {
	Events() <-chan struct{}
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
