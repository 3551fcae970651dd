package get_calendar

import (
	"fmt"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
	getCalendar "github.com/m04kA/SwagDay-BookingService/internal/usecase/get_calendar"
)

// CalendarDayResponse HTTP-модель одной ячейки сетки
type CalendarDayResponse struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Day            int     `json:"day"`
	IsBooked       bool    `json:"isBooked"`
	IsToday        bool    `json:"isToday"`
	IsPast         bool    `json:"isPast"`
	IsCurrentMonth bool    `json:"isCurrentMonth"`
	IsSelected     bool    `json:"isSelected"`
	CompanyName    *string `json:"companyName,omitempty"`
}

// CalendarResponse HTTP-модель календарной сетки на месяц
type CalendarResponse struct {
	Month        string                `json:"month"`      // YYYY-MM
	MonthLabel   string                `json:"monthLabel"` // например, "October 2025"
	Days         []CalendarDayResponse `json:"days"`
	SelectedDate *string               `json:"selectedDate,omitempty"`
	Loading      bool                  `json:"loading"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Month:      resp.Month.String(),
		MonthLabel: fmt.Sprintf("%s %d", resp.Month.Month, resp.Month.Year),
		Days:       make([]CalendarDayResponse, 0, len(resp.Days)),
		Loading:    resp.Loading,
	}

	if resp.Selected != nil {
		s := resp.Selected.String()
		out.SelectedDate = &s
	}

	for _, day := range resp.Days {
		out.Days = append(out.Days, CalendarDayResponse{
			Date:           day.Date.String(),
			Day:            day.Date.Day,
			IsBooked:       day.IsBooked,
			IsToday:        day.IsToday,
			IsPast:         day.IsPast,
			IsCurrentMonth: day.IsCurrentMonth,
			IsSelected:     day.IsSelected,
			CompanyName:    day.CompanyName,
		})
	}

	return out
}

// parseMonthParam разбирает необязательный query-параметр month
func parseMonthParam(raw string) (*domain.Month, error) {
	if raw == "" {
		return nil, nil
	}
	month, err := domain.ParseMonth(raw)
	if err != nil {
		return nil, err
	}
	return &month, nil
}
