package create_booking

import "errors"

var (
	// ErrNoDateSelected возвращается, когда дата для бронирования не выбрана
	ErrNoDateSelected = errors.New("create_booking: no date selected")

	// ErrInvalidInput возвращается при некорректных входных данных формы
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateAlreadyBooked возвращается при конфликте дат: выбранную дату
	// успел занять другой клиент. Кэш доступности к этому моменту уже
	// принудительно обновлен, выбор сброшен
	ErrDateAlreadyBooked = errors.New("create_booking: date already booked")

	// ErrInternal возвращается при прочих ошибках; выбор даты при этом
	// сохраняется, чтобы пользователь мог повторить попытку
	ErrInternal = errors.New("create_booking: internal error")
)
