package experienceapi

// CreateReservaRequest тело запроса POST /bookings/crear-reserva/
// Имена полей зафиксированы контрактом внешнего Experiences API
type CreateReservaRequest struct {
	Participants     int      `json:"participants"`
	Price            int      `json:"price"`
	User             int64    `json:"user"`
	ExperienceDate   string   `json:"experience_date"` // YYYY-MM-DD
	Location         string   `json:"location"`
	TimePreference   string   `json:"time_preference"`
	Categories       []string `json:"categories"`
	NotasAdicionales string   `json:"notas_adicionales"`
}

// CreateReservaResponse ответ Experiences API с идентификатором бронирования
type CreateReservaResponse struct {
	ID int64 `json:"id"`
}

// PreferencesRequest тело запроса PATCH /users/preferences/
// Шесть фиксированных ключей, по одному на категорию
type PreferencesRequest struct {
	Music      []string `json:"music"`
	Culture    []string `json:"culture"`
	Sports     []string `json:"sports"`
	Gastronomy []string `json:"gastronomy"`
	Nightlife  []string `json:"nightlife"`
	Adventure  []string `json:"adventure"`
}

// ErrorResponse модель ошибки от Experiences API
type ErrorResponse struct {
	Detail string `json:"detail"`
}
