package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Business validation constants
const (
	MaxCompanyNameLength = 200
	MaxEmailLength       = 254
	MaxDescriptionLength = 2000
)

// DaysPerWeek ширина строки календарной сетки
const DaysPerWeek = 7
