package get_calendar

import (
	"time"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
	"github.com/m04kA/SwagDay-BookingService/pkg/ptr"
)

// buildMonthGrid строит сетку дней для отображаемого месяца.
//
// Сетка всегда шириной 7 (неделя начинается с воскресенья): перед первым
// числом идут заполняющие дни предыдущего месяца, после последнего -
// дни следующего, так что общее число ячеек кратно 7. Статусные флаги
// каждой ячейки вычисляются из снапшота доступности, "сегодня" и
// отображаемого месяца.
func buildMonthGrid(
	month domain.Month,
	today domain.Date,
	snapshot *domain.AvailabilitySnapshot,
	selected *domain.Date,
) []domain.CalendarDay {
	first := month.FirstDay()
	leading := int(first.Time(time.UTC).Weekday()) // дней предыдущего месяца перед первым числом

	// Округляем вверх до полной недели
	total := leading + month.Days()
	if rem := total % domain.DaysPerWeek; rem != 0 {
		total += domain.DaysPerWeek - rem
	}

	days := make([]domain.CalendarDay, 0, total)
	date := first.AddDays(-leading)

	for i := 0; i < total; i++ {
		day := domain.CalendarDay{
			Date:           date,
			IsBooked:       snapshot.IsBooked(date),
			IsToday:        date == today,
			IsPast:         date.Before(today),
			IsCurrentMonth: month.Contains(date),
			IsSelected:     selected != nil && date == *selected,
		}

		// Имя компании показываем только для занятых дней отображаемого месяца
		if day.IsBooked && day.IsCurrentMonth {
			if owner, ok := snapshot.Owner(date); ok {
				day.CompanyName = ptr.Ptr(owner)
			}
		}

		days = append(days, day)
		date = date.AddDays(1)
	}

	return days
}
