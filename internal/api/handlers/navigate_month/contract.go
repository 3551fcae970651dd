package navigate_month

import "github.com/m04kA/SwagDay-BookingService/internal/domain"

type CalendarState interface {
	Navigate(direction string) (domain.Month, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
