package advance_questionnaire

// Request модель запроса перехода next
type Request struct {
	UserID int64  // ID пользователя из токена
	Token  string // bearer-токен для вызова Experiences API
}

// Response модель результата перехода
// Submitted = true означает терминальное состояние: предпочтения
// подтверждены внешним API и анкета удалена
type Response struct {
	Index     int  `json:"index"`
	Submitted bool `json:"submitted"`
}
