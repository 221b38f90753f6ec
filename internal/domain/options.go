package domain

// OptionNoPreference особый вариант ответа "ничего конкретного"
// Взаимоисключающий со всеми остальными вариантами своей категории
const OptionNoPreference = "Nada en especial"

// categoryOptions каталог вариантов ответа анкеты по категориям
// Закрытые наборы, синхронизированы с каталогом мобильного приложения;
// OptionNoPreference доступен в каждой категории и в каталоге не перечисляется
var categoryOptions = map[Category][]string{
	CategoryMusic: {
		"Conciertos",
		"Festivales",
		"Música en vivo",
		"Ópera y clásica",
		"Jam sessions",
	},
	CategoryCulture: {
		"Museos",
		"Teatro",
		"Exposiciones",
		"Cine",
		"Visitas guiadas",
	},
	CategorySports: {
		"Fútbol",
		"Baloncesto",
		"Motor",
		"Pádel y tenis",
		"Eventos deportivos",
	},
	CategoryGastronomy: {
		"Restaurantes",
		"Tapas",
		"Catas de vino",
		"Cocina internacional",
		"Talleres de cocina",
	},
	CategoryNightlife: {
		"Discotecas",
		"Bares y pubs",
		"Rooftops",
		"Karaoke",
	},
	CategoryAdventure: {
		"Escape rooms",
		"Rutas y senderismo",
		"Deportes de aventura",
		"Parques temáticos",
		"Actividades acuáticas",
	},
}

// OptionsFor возвращает каталог вариантов ответа для категории
// (включая OptionNoPreference последним элементом)
func OptionsFor(category Category) []string {
	base := categoryOptions[category]
	options := make([]string, 0, len(base)+1)
	options = append(options, base...)
	options = append(options, OptionNoPreference)
	return options
}

// IsValidOption проверяет, что вариант ответа есть в каталоге категории
func IsValidOption(category Category, option string) bool {
	if option == OptionNoPreference {
		return category.IsValid()
	}
	for _, o := range categoryOptions[category] {
		if o == option {
			return true
		}
	}
	return false
}
