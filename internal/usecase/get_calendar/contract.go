package get_calendar

import "github.com/m04kA/SwagDay-BookingService/internal/domain"

// CalendarState интерфейс владельца состояния календаря
type CalendarState interface {
	Displayed() domain.Month
	Selected() *domain.Date
}

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
