package output

import "github.com/chrisdamba/foodcatalog/internal/models"

func sampleCatalog() *models.Catalog {
	return &models.Catalog{
		RunID: "run-1",
		Restaurants: []models.Restaurant{
			{
				ID:          "1",
				Name:        "Spice Route",
				Address:     "123 Main St, Houston, TX 77002",
				Phone:       "(713) 555-0100",
				Description: "Family-run curry house",
				Cuisine:     "Indian",
				Rating:      4.5,
				PriceTier:   models.PriceModerate,
				OpenTime:    "11:00",
				CloseTime:   "22:00",
				HoursRaw:    "11AM-10PM",
				Coordinates: models.Location{Lat: 29.7604, Lon: -95.2198, Synthetic: true},
			},
			{
				ID:          "2",
				Name:        "Bayou Bistro",
				Address:     "5000 Westheimer Rd, Houston, TX 77056",
				Description: "Authentic cuisine and excellent service",
				Cuisine:     "Cajun",
				Rating:      4.0,
				PriceTier:   models.PricePremium,
				OpenTime:    "17:00",
				CloseTime:   "23:30",
				Coordinates: models.Location{Lat: 29.7370, Lon: -95.5195},
			},
		},
	}
}
