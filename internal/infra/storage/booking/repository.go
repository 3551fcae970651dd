package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
	"github.com/m04kA/SwagDay-BookingService/pkg/psqlbuilder"
)

// Имя unique constraint на booking_date (см. migrations/001_init.sql)
const uniqueDateConstraint = "unique_booking_date"

// Repository репозиторий для работы с бронированиями.
// Хранилище append-only: бронирования только создаются и читаются,
// редактирования и отмены нет.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// При нарушении уникальности booking_date возвращает ErrDuplicateDate -
// это штатный исход гонки двух клиентов за одну дату, вызывающий код
// обязан отличать его от остальных ошибок.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_date",
			"company_name",
			"email",
			"description",
		).
		Values(
			booking.BookingDate.String(),
			booking.CompanyName,
			booking.Email,
			booking.Description,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, booking.BookingDate)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// ListAll возвращает все бронирования, отсортированные по дате.
// booking_date читается как текст YYYY-MM-DD и парсится в календарную
// дату по компонентам: время и таймзона в данных отсутствуют, и никакой
// сдвиг от таймзоны процесса здесь невозможен.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_date::text",
		"company_name",
		"email",
		"description",
		"created_at",
	).
		From("bookings").
		OrderBy("booking_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var rawDate string
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&rawDate,
			&booking.CompanyName,
			&booking.Email,
			&booking.Description,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.BookingDate, err = domain.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - parse booking_date: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
