package catalog

import "github.com/barberflow/salon-api/internal/models"

// Seed data used when the durable store holds no snapshot yet.

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:          "s1",
			Name:        "Classic Haircut",
			Description: "A precision cut tailored to your face shape and style.",
			Price:       35,
			DurationMin: 45,
			Icon:        "Scissors",
			Active:      true,
		},
		{
			ID:          "s2",
			Name:        "Beard Sculpting",
			Description: "Expert beard trimming and shaping with hot towel finish.",
			Price:       25,
			DurationMin: 30,
			Icon:        "Zap",
			Active:      true,
		},
		{
			ID:          "s3",
			Name:        "The Royal Shave",
			Description: "Traditional straight razor shave with premium oils.",
			Price:       45,
			DurationMin: 60,
			Icon:        "Droplets",
			Active:      true,
		},
		{
			ID:          "s4",
			Name:        "Full Grooming",
			Description: "Haircut, beard sculpt, and mini-facial combo.",
			Price:       75,
			DurationMin: 90,
			Icon:        "User",
			Active:      true,
		},
	}
}

func seedBarbers() []models.Barber {
	return []models.Barber{
		{
			ID:          "b1",
			Name:        "Marco Rossi",
			Email:       "marco@yoursbeauty.com",
			Avatar:      "https://picsum.photos/seed/marco/200",
			Rating:      4.9,
			Specialties: []string{"Classic Fades", "Scissor Cuts"},
			Earnings:    2450,
			OffDays:     []string{},
			Active:      true,
		},
		{
			ID:          "b2",
			Name:        "Sasha Vance",
			Email:       "sasha@yoursbeauty.com",
			Avatar:      "https://picsum.photos/seed/sasha/200",
			Rating:      4.8,
			Specialties: []string{"Modern Styles", "Beard Art"},
			Earnings:    1980,
			OffDays:     []string{},
			Active:      true,
		},
		{
			ID:          "b3",
			Name:        "James Dean",
			Email:       "james@yoursbeauty.com",
			Avatar:      "https://picsum.photos/seed/james/200",
			Rating:      4.7,
			Specialties: []string{"Straight Razor", "Skin Fades"},
			Earnings:    2100,
			OffDays:     []string{},
			Active:      true,
		},
	}
}
