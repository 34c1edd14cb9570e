package catalog

import "time"

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DefaultProducts is the demo catalog loaded at startup.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "whisky-amrut-fusion",
			Name:        "Amrut Fusion Single Malt",
			Price:       4850,
			ABV:         50,
			Image:       "/assets/products/amrut-fusion.jpg",
			Category:    "whisky",
			Description: "Indian single malt made from barley grown at the foot of the Himalayas.",
		},
		{
			ID:          "whisky-rampur-select",
			Name:        "Rampur Select Single Malt",
			Price:       5200,
			ABV:         43,
			Image:       "/assets/products/rampur-select.jpg",
			Category:    "whisky",
			Description: "Non-chill-filtered single malt from the oldest distillery in Uttar Pradesh.",
		},
		{
			ID:          "beer-bira-blonde",
			Name:        "Bira 91 Blonde Summer Lager",
			Price:       160,
			ABV:         4.5,
			Image:       "/assets/products/bira-blonde.jpg",
			Category:    "beer",
			Description: "Crisp lager brewed with two-row barley and a hint of citrus.",
		},
		{
			ID:          "beer-kingfisher-ultra",
			Name:        "Kingfisher Ultra",
			Price:       140,
			ABV:         5,
			Image:       "/assets/products/kingfisher-ultra.jpg",
			Category:    "beer",
			Description: "Smooth premium lager with a mild bitterness.",
		},
		{
			ID:          "rum-old-monk",
			Name:        "Old Monk Supreme XXX Rum",
			Price:       1299,
			ABV:         42.8,
			Image:       "/assets/products/old-monk.jpg",
			Category:    "rum",
			Description: "Vatted dark rum aged seven years in oak, a classic since 1954.",
		},
		{
			ID:          "gin-greater-than",
			Name:        "Greater Than London Dry Gin",
			Price:       1750,
			ABV:         42.8,
			Image:       "/assets/products/greater-than.jpg",
			Category:    "gin",
			Description: "India's first craft gin, distilled with juniper, ginger and chamomile.",
		},
		{
			ID:          "wine-sula-shiraz",
			Name:        "Sula Rasa Shiraz",
			Price:       1495,
			ABV:         13.5,
			Image:       "/assets/products/sula-rasa.jpg",
			Category:    "wine",
			Description: "Full-bodied Nashik shiraz with notes of dark fruit and pepper.",
		},
		{
			ID:          "vodka-smoke-classic",
			Name:        "Smoke Lab Classic Vodka",
			Price:       1190,
			ABV:         40,
			Image:       "/assets/products/smoke-lab.jpg",
			Category:    "vodka",
			Description: "Five-times distilled vodka made from Basmati rice.",
		},
	}
}

// DefaultOffers is the promotional strip shown on the catalog page.
func DefaultOffers() []Offer {
	return []Offer{
		{
			ID:            "offer-first-order",
			Title:         "Flat ₹100 off your first order",
			Description:   "Applied automatically at the counter on orders above ₹999.",
			ValidUntil:    date(2026, 12, 31),
			MinOrderValue: 999,
		},
		{
			ID:          "offer-beer-bundle",
			Title:       "Buy 5 beers, chill the 6th on us",
			Description: "Mix and match any lagers from the beer shelf.",
			ValidUntil:  date(2026, 10, 31),
			MinQuantity: 5,
		},
		{
			ID:             "offer-weekend-malt",
			Title:          "Weekend single malt tasting",
			Description:    "Complimentary tasting pour with any single malt, weekends only.",
			ValidUntil:     date(2026, 11, 30),
			ApplicableDays: []time.Weekday{time.Saturday, time.Sunday},
		},
	}
}
