package domain

import "time"

// BookingReceipt локальная запись об успешно отправленном бронировании
// Создается в одной транзакции с удалением черновика; upstream id
// присваивается внешним Experiences API
type BookingReceipt struct {
	ID               int64
	UserID           int64
	UpstreamID       int64
	City             string
	TimePreference   TimePreference
	ExperienceDate   time.Time
	ParticipantCount int
	Total            int
	CreatedAt        time.Time
}
