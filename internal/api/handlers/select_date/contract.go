package select_date

import "github.com/m04kA/SwagDay-BookingService/internal/domain"

type CalendarState interface {
	Select(date domain.Date) error
	ClearSelection()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
