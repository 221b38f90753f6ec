package domain

// Cities города, в которых доступны впечатления
// Закрытый набор, синхронизирован с каталогом Experiences API
var Cities = []string{
	"Madrid",
	"Barcelona",
	"Valencia",
	"Sevilla",
	"Bilbao",
	"Granada",
	"Málaga",
	"Zaragoza",
}

// IsSupportedCity проверяет, что город входит в каталог
func IsSupportedCity(name string) bool {
	for _, c := range Cities {
		if c == name {
			return true
		}
	}
	return false
}
