package get_calendar

import "github.com/m04kA/SwagDay-BookingService/internal/domain"

// Request модель запроса календарной сетки
type Request struct {
	// Month месяц для отображения; если nil, берется текущий
	// отображаемый месяц из состояния календаря
	Month *domain.Month
}

// Response модель ответа с календарной сеткой
type Response struct {
	Month    domain.Month
	Days     []domain.CalendarDay
	Selected *domain.Date
	Loading  bool
}
