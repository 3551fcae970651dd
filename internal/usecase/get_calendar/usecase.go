package get_calendar

import (
	"context"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

// UseCase use case построения календарной сетки на месяц
type UseCase struct {
	state        CalendarState
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(state CalendarState, cache AvailabilityCache, logger Logger) *UseCase {
	return &UseCase{
		state:        state,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку для запрошенного либо отображаемого месяца.
// Сетка считается заново при каждом вызове: ячейки - эфемерное
// производное от снапшота, выбора и "сегодня", они нигде не хранятся.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	month := uc.state.Displayed()
	if req != nil && req.Month != nil {
		month = *req.Month
	}

	today := uc.timeProvider.Today()
	selected := uc.state.Selected()
	snapshot := uc.cache.Snapshot()

	days := buildMonthGrid(month, today, snapshot, selected)

	uc.logger.Info("GetCalendar: month=%s, cells=%d, booked=%d", month, len(days), snapshot.Len())

	return &Response{
		Month:    month,
		Days:     days,
		Selected: selected,
		Loading:  uc.cache.Loading(),
	}, nil
}

// TimeProvider интерфейс для получения сегодняшней даты (для тестирования)
type TimeProvider interface {
	Today() domain.Date
}

// RealTimeProvider реальный провайдер даты для production
type RealTimeProvider struct{}

// Today возвращает сегодняшнюю дату в локальной таймзоне
func (p *RealTimeProvider) Today() domain.Date {
	return domain.Today()
}
