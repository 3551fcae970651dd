package domain

import (
	"fmt"
	"time"
)

// Date - календарная дата без времени и таймзоны.
// Храним компоненты, а не time.Time: дата брони не должна
// сдвигаться при смене локальной таймзоны сервера.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateFormat, raw)
	if err != nil {
		return Date{}, fmt.Errorf("domain: invalid date %q: %w", raw, err)
	}
	return DateOf(t), nil
}

// DateOf берет календарные компоненты момента времени в его локации
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today - сегодняшняя дата в локальной таймзоне сервера
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return d.Time(time.UTC).Format(DateFormat)
}

// Time - полночь этой даты в указанной локации
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before - строго раньше другой даты
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// AddDays возвращает дату через n дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// IsZero - нулевое значение Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// Month - календарный месяц (год + месяц), страница календаря
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth парсит месяц в формате YYYY-MM
func ParseMonth(raw string) (Month, error) {
	t, err := time.Parse(MonthFormat, raw)
	if err != nil {
		return Month{}, fmt.Errorf("domain: invalid month %q: %w", raw, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// CurrentMonth - текущий месяц в локальной таймзоне сервера
func CurrentMonth() Month {
	today := Today()
	return Month{Year: today.Year, Month: today.Month}
}

func (m Month) String() string {
	return m.FirstDay().Time(time.UTC).Format(MonthFormat)
}

// Next - следующий месяц с переходом через год
func (m Month) Next() Month {
	t := m.FirstDay().Time(time.UTC).AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev - предыдущий месяц с переходом через год
func (m Month) Prev() Month {
	t := m.FirstDay().Time(time.UTC).AddDate(0, -1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// FirstDay - первое число месяца
func (m Month) FirstDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Days - число дней в месяце: нулевой день следующего месяца
// нормализуется в последний день текущего
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains - принадлежит ли дата этому месяцу
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}
