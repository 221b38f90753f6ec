package domain

// Правила выбора и ценообразования
const (
	// MaxDiscardedCategories максимум исключаемых категорий в одном выборе
	MaxDiscardedCategories = 3

	// FreeDiscards количество бесплатных исключений (первое — бесплатно)
	FreeDiscards = 1

	// SurchargePerExtraDiscard доплата за каждое исключение сверх бесплатного
	SurchargePerExtraDiscard = 5

	// MinAdvanceDays минимальное количество дней до даты впечатления
	MinAdvanceDays = 7

	// DefaultBasePrice базовая цена нового черновика (первая ступень ценового контрола)
	DefaultBasePrice = 20

	// DefaultParticipantCount количество участников нового черновика
	DefaultParticipantCount = 1

	// MaxNotesLength максимальная длина дополнительных заметок
	MaxNotesLength = 500
)

// BasePrices допустимые ступени базовой цены
var BasePrices = []int{20, 40, 60}

// IsValidBasePrice проверяет, что цена входит в набор допустимых ступеней
func IsValidBasePrice(price int) bool {
	for _, p := range BasePrices {
		if p == price {
			return true
		}
	}
	return false
}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
