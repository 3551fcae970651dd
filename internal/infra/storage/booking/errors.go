package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrDuplicateDate возвращается при нарушении уникальности booking_date:
	// на эту дату уже существует бронирование
	ErrDuplicateDate = errors.New("booking.repository: date already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

// isUniqueViolation проверяет, что ошибка - нарушение уникальности даты.
// Имя констрейнта проверяется дополнительно: другие уникальные индексы
// таблицы не должны классифицироваться как конфликт даты.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != pgUniqueViolation {
		return false
	}
	return pqErr.Constraint == "" || pqErr.Constraint == uniqueDateConstraint
}
