package submit_booking

// Request модель запроса на отправку черновика
type Request struct {
	SelectionID int64  // ID черновика
	UserID      int64  // ID пользователя из токена
	Token       string // bearer-токен для вызова Experiences API
}

// Response модель ответа об успешной отправке
type Response struct {
	BookingID int64 // идентификатор бронирования из Experiences API
	Total     int   // итоговая стоимость, отправленная в бронировании
}
