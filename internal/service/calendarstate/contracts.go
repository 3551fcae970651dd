package calendarstate

import "github.com/m04kA/SwagDay-BookingService/internal/domain"

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	Snapshot() *domain.AvailabilitySnapshot
	Loading() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
