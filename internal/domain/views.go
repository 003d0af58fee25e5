package domain

// CourtWithSport корт вместе с видом спорта (для списков площадок)
type CourtWithSport struct {
	Court Court
	Sport Sport
}

// VenueWithCourts площадка вместе со своими кортами
type VenueWithCourts struct {
	Venue  Venue
	Courts []CourtWithSport
}

// CourtDetails корт с краткими данными вида спорта и площадки
// Результат поиска кортов
type CourtDetails struct {
	Court Court
	Sport Sport
	Venue Venue
}
