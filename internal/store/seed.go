package store

import (
	"time"

	"fouraana/internal/domain"
)

func defaultSettings() domain.SiteSettings {
	return domain.SiteSettings{
		HomepageTitle:    "Find Your Dream Property in Nepal",
		HomepageSubtitle: "Your trusted marketplace for lands, houses, and apartments in the heart of the Himalayas.",
		AboutText:        "4 Aana is Nepal's leading digital real estate platform, dedicated to bringing transparency and efficiency to the property market. Whether you're looking for a residential plot in Kathmandu or a commercial space in Pokhara, we connect you with the best opportunities.",
		ContactEmail:     "info@4aana.com.np",
		ContactPhone:     "+977 1 4XXXXXX",
		MetaDescription:  "The best place to buy, sell, or rent properties in Nepal. Specializing in Land, Houses, and Apartments.",
	}
}

// seedState builds the document a fresh installation starts with: a few demo
// listings, empty inquiries, default settings, no favorites.
func seedState() domain.AppState {
	now := time.Now().UnixMilli()
	sqft := func(v float64) *float64 { return &v }

	return domain.AppState{
		Properties: []domain.Property{
			{
				ID:       "1",
				Title:    "Beautiful 4 Aana Land in Budhanilkantha",
				Type:     domain.TypeLand,
				Price:    35000000,
				Area:     4,
				AreaSqFt: sqft(1369),
				Location: domain.Location{
					Province:    "Bagmati",
					District:    "Kathmandu",
					City:        "Budhanilkantha",
					Coordinates: &domain.Coordinates{Lat: 27.7788, Lng: 85.3582},
				},
				Images: []string{
					"https://images.unsplash.com/photo-1500382017468-9049fed747ef?q=80&w=2000&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=2000&auto=format&fit=crop",
				},
				Description:     "Flat land located in a peaceful residential area of Budhanilkantha. South facing, with 13ft road access. Perfect for a luxury residence.",
				Status:          domain.StatusForSale,
				IsFeatured:      true,
				IsAvailable:     true,
				ContactName:     "Ram Shrestha",
				ContactPhone:    "9841000000",
				ContactWhatsApp: "9841000000",
				CreatedAt:       now,
			},
			{
				ID:       "2",
				Title:    "Modern Apartment in Jhamsikhel",
				Type:     domain.TypeApartment,
				Price:    18500000,
				Area:     0,
				AreaSqFt: sqft(1250),
				Location: domain.Location{
					Province:    "Bagmati",
					District:    "Lalitpur",
					City:        "Jhamsikhel",
					Coordinates: &domain.Coordinates{Lat: 27.6794, Lng: 85.3023},
				},
				Images: []string{
					"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?q=80&w=2000&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1460317442991-0ec239397118?q=80&w=2000&auto=format&fit=crop",
				},
				Description:     "3 BHK Modern apartment with all amenities. Includes 24/7 security, gym, and swimming pool. Located in the prime hub of Jhamsikhel.",
				Status:          domain.StatusForSale,
				IsFeatured:      true,
				IsAvailable:     true,
				ContactName:     "Sita Sharma",
				ContactPhone:    "9851000000",
				ContactWhatsApp: "9851000000",
				CreatedAt:       now,
			},
			{
				ID:       "3",
				Title:    "Cozy Room for Rent in Koteshwor",
				Type:     domain.TypeRoom,
				Price:    8000,
				Area:     0,
				AreaSqFt: sqft(180),
				Location: domain.Location{
					Province:    "Bagmati",
					District:    "Kathmandu",
					City:        "Koteshwor",
					Coordinates: &domain.Coordinates{Lat: 27.6756, Lng: 85.3468},
				},
				Images: []string{
					"https://images.unsplash.com/photo-1522771739844-649fb49b2d88?q=80&w=2000&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1513694203232-719a280e022f?q=80&w=2000&auto=format&fit=crop",
				},
				Description:     "Single room available for rent. Attached bathroom, 24-hour water supply, and parking space for two-wheelers included.",
				Status:          domain.StatusForRent,
				IsFeatured:      false,
				IsAvailable:     true,
				ContactName:     "Hari Prasad",
				ContactPhone:    "9861000000",
				ContactWhatsApp: "9861000000",
				CreatedAt:       now,
			},
		},
		Inquiries: []domain.Inquiry{},
		Settings:  defaultSettings(),
		Favorites: []string{},
	}
}
