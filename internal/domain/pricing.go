package domain

// PriceQuote разбивка стоимости черновика
type PriceQuote struct {
	BasePrice        int
	ParticipantCount int
	BaseTotal        int // BasePrice * ParticipantCount
	DiscardedCount   int
	ExtraDiscards    int // исключения сверх бесплатного
	Surcharge        int // ExtraDiscards * SurchargePerExtraDiscard
	Total            int
}

// ComputeQuote считает разбивку стоимости
// Чистая функция без побочных эффектов; пересчитывается при каждом запросе
func ComputeQuote(s *Selection) PriceQuote {
	baseTotal := s.BasePrice * s.ParticipantCount

	extra := len(s.DiscardedCategories) - FreeDiscards
	if extra < 0 {
		extra = 0
	}
	surcharge := extra * SurchargePerExtraDiscard

	return PriceQuote{
		BasePrice:        s.BasePrice,
		ParticipantCount: s.ParticipantCount,
		BaseTotal:        baseTotal,
		DiscardedCount:   len(s.DiscardedCategories),
		ExtraDiscards:    extra,
		Surcharge:        surcharge,
		Total:            baseTotal + surcharge,
	}
}

// ComputeTotal считает итоговую стоимость черновика
// total = basePrice * participantCount + max(0, discards-1) * SurchargePerExtraDiscard
func ComputeTotal(s *Selection) int {
	return ComputeQuote(s).Total
}
