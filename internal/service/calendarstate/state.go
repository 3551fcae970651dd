// Package calendarstate владеет общим UI-состоянием календаря:
// отображаемым месяцем и текущим выбором даты.
package calendarstate

import (
	"sync"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

// Направления навигации по месяцам
const (
	DirectionPrev = "prev"
	DirectionNext = "next"
)

// State координирующий владелец состояния календаря.
// Выбранная дата одна на все состояние (либо отсутствует); правила
// выбора проверяются здесь же по текущему снапшоту доступности.
type State struct {
	cache  AvailabilityCache
	logger Logger

	// clock подменяется в тестах
	clock func() domain.Date

	mu        sync.Mutex
	displayed domain.Month
	selected  *domain.Date
}

// New создает состояние с текущим месяцем и без выбранной даты
func New(cache AvailabilityCache, logger Logger) *State {
	return &State{
		cache:     cache,
		logger:    logger,
		clock:     domain.Today,
		displayed: domain.CurrentMonth(),
	}
}

// Displayed возвращает отображаемый месяц
func (s *State) Displayed() domain.Month {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayed
}

// Navigate сдвигает отображаемый месяц ровно на один календарный месяц
// вперед или назад (с корректным переходом через границу года)
func (s *State) Navigate(direction string) (domain.Month, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch direction {
	case DirectionPrev:
		s.displayed = s.displayed.Prev()
	case DirectionNext:
		s.displayed = s.displayed.Next()
	default:
		return s.displayed, ErrInvalidDirection
	}

	s.logger.Info("calendarstate: displayed month is now %s", s.displayed)
	return s.displayed, nil
}

// Select выбирает дату для бронирования.
// Дата должна принадлежать отображаемому месяцу, не быть в прошлом,
// не быть занятой и кэш не должен находиться в состоянии загрузки -
// по тем же правилам кликабельности, по которым рендерится сетка.
func (s *State) Select(date domain.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.displayed.Contains(date) {
		return ErrOutsideMonth
	}
	if date.Before(s.clock()) {
		return ErrDateInPast
	}
	if s.cache.Loading() {
		return ErrRefreshInProgress
	}
	if s.cache.Snapshot().IsBooked(date) {
		return ErrDateBooked
	}

	s.selected = &date
	s.logger.Info("calendarstate: selected date %s", date)
	return nil
}

// Selected возвращает выбранную дату или nil
func (s *State) Selected() *domain.Date {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil
	}
	d := *s.selected
	return &d
}

// ClearSelection сбрасывает выбор даты
func (s *State) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil {
		s.logger.Info("calendarstate: selection %s cleared", *s.selected)
	}
	s.selected = nil
}
