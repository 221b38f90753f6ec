package domain

import "fmt"

// Category категория впечатлений
// Строковое значение совпадает с ключом внешнего Experiences API
type Category string

const (
	CategoryMusic      Category = "music"
	CategoryCulture    Category = "culture"
	CategorySports     Category = "sports"
	CategoryGastronomy Category = "gastronomy"
	CategoryNightlife  Category = "nightlife"
	CategoryAdventure  Category = "adventure"
)

// AllCategories фиксированный порядок категорий
// Определяет и порядок вопросов анкеты предпочтений
var AllCategories = []Category{
	CategoryMusic,
	CategoryCulture,
	CategorySports,
	CategoryGastronomy,
	CategoryNightlife,
	CategoryAdventure,
}

// displayNames отображаемые названия категорий (как в мобильном приложении)
var displayNames = map[Category]string{
	CategoryMusic:      "Música",
	CategoryCulture:    "Cultura y Arte",
	CategorySports:     "Deporte y Motor",
	CategoryGastronomy: "Gastronomía",
	CategoryNightlife:  "Ocio Nocturno",
	CategoryAdventure:  "Aventura",
}

// DisplayName возвращает отображаемое название категории
func (c Category) DisplayName() string {
	return displayNames[c]
}

// IsValid проверяет, что категория входит в закрытый набор
func (c Category) IsValid() bool {
	_, ok := displayNames[c]
	return ok
}

// ParseCategory парсит идентификатор категории
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
