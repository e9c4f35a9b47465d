package database

import (
	"log"
	"wildcamp/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }

// SeedData loads the initial catalogue on first run. Categories and hosts are
// read-only after setup, so a non-empty categories table skips everything.
func SeedData(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Printf("Seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Println("Seeding initial data...")

	categories := []models.Category{
		{Name: "Mountain", Description: "Remote highland sites far from marked trails"},
		{Name: "Island", Description: "Uninhabited island camping reached by boat"},
		{Name: "Forest", Description: "Deep forest clearings under old-growth canopy"},
		{Name: "Valley", Description: "Riverside valley sites with natural windbreaks"},
		{Name: "Beach", Description: "Undeveloped shoreline pitches"},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Printf("Seeding categories failed: %v", err)
		return
	}

	hosts := []models.Host{
		{
			Name:        "Kim Minjun",
			Email:       "minjun@wildcamp.kr",
			Phone:       "010-2345-6789",
			Description: "Third-generation landowner in the Gangwon highlands.",
			SocialLinks: datatypes.JSON([]byte(`{"instagram":"https://instagram.com/gangwon_wild"}`)),
		},
		{
			Name:        "Lee Seoyeon",
			Email:       "seoyeon@wildcamp.kr",
			Phone:       "010-8765-4321",
			Description: "Runs boat transfers to three islands off the Jeonnam coast.",
			SocialLinks: datatypes.JSON([]byte(`{"blog":"https://blog.naver.com/island_camp"}`)),
		},
	}
	if err := db.Create(&hosts).Error; err != nil {
		log.Printf("Seeding hosts failed: %v", err)
		return
	}

	campsites := []models.Campsite{
		{
			CategoryID: categories[0].ID, HostID: hosts[0].ID,
			Name:          "Cheonhwadae Ridge",
			Description:   "A bare ridge shelf at 1,100m. No facilities, full panorama.",
			Address:       "San 42, Hoenggye-ri, Pyeongchang, Gangwon",
			Latitude:      37.6511, Longitude: 128.6782, Region: "Gangwon",
			Difficulty:    models.DifficultyHard,
			PricePerNight: 50000, MaxCapacity: 4,
			CarAccessible: false, WaterAvailable: false, FireAllowed: true,
		},
		{
			CategoryID: categories[1].ID, HostID: hosts[1].ID,
			Name:          "Sasudo Island",
			Description:   "Private uninhabited island, 20 minutes by boat. Spring water available.",
			Address:       "Sasudo, Yeosu, Jeonnam",
			Latitude:      34.5533, Longitude: 127.7512, Region: "Jeonnam",
			Difficulty:    models.DifficultyExtreme,
			PricePerNight: 120000, PricePerHour: floatPtr(15000), MaxCapacity: 8,
			WaterAvailable: true, FireAllowed: true, PetAllowed: true,
		},
		{
			CategoryID: categories[2].ID, HostID: hosts[0].ID,
			Name:          "Odaesan Fir Grove",
			Description:   "Flat clearing in a fir plantation, car access to 50m.",
			Address:       "Byeongnae-ri, Jinbu-myeon, Pyeongchang, Gangwon",
			Latitude:      37.7433, Longitude: 128.5901, Region: "Gangwon",
			Difficulty:    models.DifficultyEasy,
			PricePerNight: 35000, MaxCapacity: 6,
			CarAccessible: true, WaterAvailable: true, ElectricityAvailable: true,
			ToiletAvailable: true, PetAllowed: true,
		},
	}
	if err := db.Create(&campsites).Error; err != nil {
		log.Printf("Seeding campsites failed: %v", err)
		return
	}

	images := []models.CampsiteImage{
		{CampsiteID: campsites[0].ID, ImageURL: "https://picsum.photos/seed/ridge/800/600", IsPrimary: true, DisplayOrder: 1},
		{CampsiteID: campsites[1].ID, ImageURL: "https://picsum.photos/seed/island/800/600", IsPrimary: true, DisplayOrder: 1},
		{CampsiteID: campsites[1].ID, ImageURL: "https://picsum.photos/seed/island2/800/600", DisplayOrder: 2},
		{CampsiteID: campsites[2].ID, ImageURL: "https://picsum.photos/seed/grove/800/600", IsPrimary: true, DisplayOrder: 1},
	}
	if err := db.Create(&images).Error; err != nil {
		log.Printf("Seeding campsite images failed: %v", err)
		return
	}

	log.Println("Seeding completed successfully.")
}
