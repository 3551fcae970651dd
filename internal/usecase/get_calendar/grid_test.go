package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
	"github.com/m04kA/SwagDay-BookingService/pkg/ptr"
)

func mustDate(t *testing.T, raw string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(raw)
	require.NoError(t, err)
	return d
}

func snapshotOf(bookings map[string]string) *domain.AvailabilitySnapshot {
	list := make([]*domain.Booking, 0, len(bookings))
	for raw, company := range bookings {
		d, _ := domain.ParseDate(raw)
		list = append(list, &domain.Booking{BookingDate: d, CompanyName: company})
	}
	return domain.NewAvailabilitySnapshot(list)
}

// Для любого месяца число ячеек кратно 7, все дни месяца присутствуют
// ровно по разу с isCurrentMonth=true, заполняющие дни помечены false
func TestBuildMonthGrid_Completeness(t *testing.T) {
	months := []domain.Month{
		{Year: 2024, Month: time.February},  // високосный февраль
		{Year: 2023, Month: time.February},  // обычный февраль
		{Year: 2025, Month: time.June},      // месяц, начинающийся с воскресенья
		{Year: 2025, Month: time.March},     // 31 день, 6 недель
		{Year: 2024, Month: time.September}, // 30 дней
		{Year: 2024, Month: time.December},  // граница года
	}

	today := domain.Date{Year: 2020, Month: time.January, Day: 1}
	empty := domain.EmptyAvailabilitySnapshot()

	for _, month := range months {
		t.Run(month.String(), func(t *testing.T) {
			days := buildMonthGrid(month, today, empty, nil)

			assert.Zero(t, len(days)%domain.DaysPerWeek, "cell count must be a multiple of 7")

			seen := make(map[int]int)
			for _, day := range days {
				if day.IsCurrentMonth {
					require.Equal(t, month.Year, day.Date.Year)
					require.Equal(t, month.Month, day.Date.Month)
					seen[day.Date.Day]++
				}
			}

			require.Len(t, seen, month.Days(), "every day of the month appears")
			for day, count := range seen {
				assert.Equal(t, 1, count, "day %d appears exactly once", day)
			}
		})
	}
}

func TestBuildMonthGrid_FillerDays(t *testing.T) {
	// Октябрь 2025 начинается в среду: 3 ведущих дня сентября,
	// 31 день октября, итого 34 -> добиваем до 35 одним днем ноября
	month := domain.Month{Year: 2025, Month: time.October}
	days := buildMonthGrid(month, mustDate(t, "2025-10-15"), domain.EmptyAvailabilitySnapshot(), nil)

	require.Len(t, days, 35)

	assert.Equal(t, mustDate(t, "2025-09-28"), days[0].Date)
	assert.False(t, days[0].IsCurrentMonth)
	assert.Equal(t, mustDate(t, "2025-10-01"), days[3].Date)
	assert.True(t, days[3].IsCurrentMonth)
	assert.Equal(t, mustDate(t, "2025-11-01"), days[34].Date)
	assert.False(t, days[34].IsCurrentMonth)
}

func TestBuildMonthGrid_StatusFlags(t *testing.T) {
	month := domain.Month{Year: 2025, Month: time.October}
	today := mustDate(t, "2025-10-15")
	snapshot := snapshotOf(map[string]string{
		"2025-10-20": "Acme Corp",
		"2025-10-10": "Globex",
		"2025-09-30": "Initech", // занятый день вне отображаемого месяца
	})

	days := buildMonthGrid(month, today, snapshot, nil)

	byDate := make(map[domain.Date]domain.CalendarDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	past := byDate[mustDate(t, "2025-10-14")]
	assert.True(t, past.IsPast)
	assert.False(t, past.IsToday)
	assert.False(t, past.IsSelectable())

	current := byDate[today]
	assert.True(t, current.IsToday)
	assert.False(t, current.IsPast, "today is not past")
	assert.True(t, current.IsSelectable())

	booked := byDate[mustDate(t, "2025-10-20")]
	assert.True(t, booked.IsBooked)
	assert.False(t, booked.IsSelectable())
	require.NotNil(t, booked.CompanyName, "booked current-month cell carries the owner")
	assert.Equal(t, "Acme Corp", *booked.CompanyName)

	bookedPast := byDate[mustDate(t, "2025-10-10")]
	assert.True(t, bookedPast.IsBooked)
	assert.True(t, bookedPast.IsPast)

	// Занятый заполняющий день помечен, но имя владельца не показывается
	filler := byDate[mustDate(t, "2025-09-30")]
	assert.True(t, filler.IsBooked)
	assert.False(t, filler.IsCurrentMonth)
	assert.Nil(t, filler.CompanyName)
	assert.False(t, filler.IsSelectable())
}

func TestBuildMonthGrid_SelectedByDateEquality(t *testing.T) {
	month := domain.Month{Year: 2025, Month: time.October}
	selected := mustDate(t, "2025-10-22")

	days := buildMonthGrid(month, mustDate(t, "2025-10-15"), domain.EmptyAvailabilitySnapshot(), ptr.Ptr(selected))

	var found int
	for _, d := range days {
		if d.IsSelected {
			found++
			assert.Equal(t, selected, d.Date)
		}
	}
	assert.Equal(t, 1, found, "exactly one cell is selected")
}

type stubState struct {
	displayed domain.Month
	selected  *domain.Date
}

func (s *stubState) Displayed() domain.Month { return s.displayed }
func (s *stubState) Selected() *domain.Date  { return s.selected }

type stubCache struct {
	snapshot *domain.AvailabilitySnapshot
	loading  bool
}

func (s *stubCache) Snapshot() *domain.AvailabilitySnapshot { return s.snapshot }
func (s *stubCache) Loading() bool                          { return s.loading }

type stubClock struct{ today domain.Date }

func (s *stubClock) Today() domain.Date { return s.today }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	displayed := domain.Month{Year: 2025, Month: time.October}
	state := &stubState{displayed: displayed}
	cache := &stubCache{snapshot: snapshotOf(map[string]string{"2025-10-20": "Acme Corp"}), loading: true}

	uc := NewUseCase(state, cache, nopLogger{})
	uc.timeProvider = &stubClock{today: mustDate(t, "2025-10-15")}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, displayed, resp.Month)
	assert.True(t, resp.Loading)
	assert.Len(t, resp.Days, 35)

	// Явно запрошенный месяц важнее отображаемого
	other := domain.Month{Year: 2026, Month: time.January}
	resp, err = uc.Execute(context.Background(), &Request{Month: &other})
	require.NoError(t, err)
	assert.Equal(t, other, resp.Month)
}
