package calendarstate

import "errors"

var (
	// ErrDateInPast возвращается при попытке выбрать прошедшую дату
	ErrDateInPast = errors.New("calendarstate: date is in the past")

	// ErrDateBooked возвращается при попытке выбрать занятую дату
	ErrDateBooked = errors.New("calendarstate: date is already booked")

	// ErrOutsideMonth возвращается при попытке выбрать дату вне отображаемого месяца
	ErrOutsideMonth = errors.New("calendarstate: date is outside the displayed month")

	// ErrRefreshInProgress возвращается, когда выбор невозможен из-за
	// выполняющегося обновления кэша доступности
	ErrRefreshInProgress = errors.New("calendarstate: availability refresh in progress")

	// ErrInvalidDirection возвращается при неизвестном направлении навигации
	ErrInvalidDirection = errors.New("calendarstate: invalid navigation direction")
)
