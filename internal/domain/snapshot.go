package domain

// AvailabilitySnapshot is a derived, read-only projection of the booking
// store: which calendar dates are taken and by whom.
// Снапшот строится целиком при каждом refresh и подменяется атомарно,
// по месту никогда не мутируется. Сразу после любой записи в хранилище
// снапшот считается устаревшим до завершения следующего refresh.
type AvailabilitySnapshot struct {
	bookedDates   map[Date]struct{}
	bookingOwners map[Date]string
}

// NewAvailabilitySnapshot строит снапшот из списка бронирований
func NewAvailabilitySnapshot(bookings []*Booking) *AvailabilitySnapshot {
	s := &AvailabilitySnapshot{
		bookedDates:   make(map[Date]struct{}, len(bookings)),
		bookingOwners: make(map[Date]string, len(bookings)),
	}
	for _, b := range bookings {
		s.bookedDates[b.BookingDate] = struct{}{}
		s.bookingOwners[b.BookingDate] = b.CompanyName
	}
	return s
}

// EmptyAvailabilitySnapshot возвращает пустой снапшот (до первого refresh)
func EmptyAvailabilitySnapshot() *AvailabilitySnapshot {
	return NewAvailabilitySnapshot(nil)
}

// IsBooked reports whether the date has a booking.
func (s *AvailabilitySnapshot) IsBooked(d Date) bool {
	_, ok := s.bookedDates[d]
	return ok
}

// Owner returns the company name holding the date, if any.
func (s *AvailabilitySnapshot) Owner(d Date) (string, bool) {
	name, ok := s.bookingOwners[d]
	return name, ok
}

// BookedDates возвращает все занятые даты (порядок не определен)
func (s *AvailabilitySnapshot) BookedDates() []Date {
	dates := make([]Date, 0, len(s.bookedDates))
	for d := range s.bookedDates {
		dates = append(dates, d)
	}
	return dates
}

// Len возвращает количество занятых дат
func (s *AvailabilitySnapshot) Len() int {
	return len(s.bookedDates)
}
