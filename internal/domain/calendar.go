package domain

// CalendarDay is one rendered day-slot in the month grid.
// Вычисляется заново на каждый рендер из снапшота доступности,
// отображаемого месяца и "сегодня"; нигде не сохраняется.
type CalendarDay struct {
	Date           Date
	IsBooked       bool
	IsToday        bool
	IsPast         bool
	IsCurrentMonth bool // true только для дней отображаемого месяца, не для заполняющих дней соседних месяцев
	IsSelected     bool

	// CompanyName заполняется для занятых дней отображаемого месяца
	CompanyName *string
}

// IsSelectable reports whether the cell can become the selected date:
// it must belong to the displayed month and be neither past nor booked.
func (c CalendarDay) IsSelectable() bool {
	return c.IsCurrentMonth && !c.IsPast && !c.IsBooked
}
