package availability

import "errors"

var (
	// ErrRefreshFailed возвращается, когда не удалось перечитать бронирования.
	// Предыдущий снапшот при этом сохраняется
	ErrRefreshFailed = errors.New("availability.cache: refresh failed")
)
