package calendarstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

type fakeCache struct {
	snapshot *domain.AvailabilitySnapshot
	loading  bool
}

func (f *fakeCache) Snapshot() *domain.AvailabilitySnapshot { return f.snapshot }
func (f *fakeCache) Loading() bool                          { return f.loading }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func mustDate(t *testing.T, raw string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(raw)
	require.NoError(t, err)
	return d
}

func newTestState(t *testing.T, cache *fakeCache) *State {
	t.Helper()
	s := New(cache, nopLogger{})
	s.clock = func() domain.Date { return mustDate(t, "2025-10-15") }
	s.displayed = domain.Month{Year: 2025, Month: time.October}
	return s
}

func TestState_Select(t *testing.T) {
	booked := domain.NewAvailabilitySnapshot([]*domain.Booking{
		{BookingDate: mustDate(t, "2025-10-20"), CompanyName: "Acme Corp"},
	})

	tests := []struct {
		name    string
		cache   *fakeCache
		date    string
		wantErr error
	}{
		{
			name:  "free future date in displayed month",
			cache: &fakeCache{snapshot: booked},
			date:  "2025-10-21",
		},
		{
			name:  "today is selectable",
			cache: &fakeCache{snapshot: booked},
			date:  "2025-10-15",
		},
		{
			name:    "past date",
			cache:   &fakeCache{snapshot: booked},
			date:    "2025-10-14",
			wantErr: ErrDateInPast,
		},
		{
			name:    "booked date",
			cache:   &fakeCache{snapshot: booked},
			date:    "2025-10-20",
			wantErr: ErrDateBooked,
		},
		{
			name:    "outside displayed month",
			cache:   &fakeCache{snapshot: booked},
			date:    "2025-11-01",
			wantErr: ErrOutsideMonth,
		},
		{
			name:    "cache refresh in progress",
			cache:   &fakeCache{snapshot: booked, loading: true},
			date:    "2025-10-21",
			wantErr: ErrRefreshInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, tt.cache)

			err := s.Select(mustDate(t, tt.date))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s.Selected(), "rejected click never becomes the selection")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, s.Selected())
			assert.Equal(t, mustDate(t, tt.date), *s.Selected())
		})
	}
}

func TestState_ClearSelection(t *testing.T) {
	s := newTestState(t, &fakeCache{snapshot: domain.EmptyAvailabilitySnapshot()})

	require.NoError(t, s.Select(mustDate(t, "2025-10-21")))
	require.NotNil(t, s.Selected())

	s.ClearSelection()
	assert.Nil(t, s.Selected())

	// Повторный сброс безопасен
	s.ClearSelection()
	assert.Nil(t, s.Selected())
}

func TestState_Navigate(t *testing.T) {
	s := newTestState(t, &fakeCache{snapshot: domain.EmptyAvailabilitySnapshot()})

	month, err := s.Navigate(DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, domain.Month{Year: 2025, Month: time.November}, month)

	month, err = s.Navigate(DirectionPrev)
	require.NoError(t, err)
	assert.Equal(t, domain.Month{Year: 2025, Month: time.October}, month)

	_, err = s.Navigate("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

// 12 навигаций вперед и 12 назад возвращают исходный месяц
func TestState_NavigateTwelveRoundTrip(t *testing.T) {
	s := newTestState(t, &fakeCache{snapshot: domain.EmptyAvailabilitySnapshot()})
	start := s.Displayed()

	for i := 0; i < 12; i++ {
		_, err := s.Navigate(DirectionNext)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.Month{Year: start.Year + 1, Month: start.Month}, s.Displayed())

	for i := 0; i < 12; i++ {
		_, err := s.Navigate(DirectionPrev)
		require.NoError(t, err)
	}
	assert.Equal(t, start, s.Displayed())
}

// Выбор переживает навигацию: правила проверяются в момент клика
func TestState_SelectionSurvivesNavigation(t *testing.T) {
	s := newTestState(t, &fakeCache{snapshot: domain.EmptyAvailabilitySnapshot()})

	require.NoError(t, s.Select(mustDate(t, "2025-10-21")))
	_, err := s.Navigate(DirectionNext)
	require.NoError(t, err)

	require.NotNil(t, s.Selected())
	assert.Equal(t, mustDate(t, "2025-10-21"), *s.Selected())
}
