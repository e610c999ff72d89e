package db

import (
	"fmt"

	"github.com/ecotrack-app/ecotrack/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates all application tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errMigrate := conn.AutoMigrate(
		&models.User{},
		&models.QuizResult{},
		&models.PointEntry{},
		&models.Submission{},
		&models.Reward{},
		&models.RewardClaim{},
		&models.CarbonCalculation{},
		&models.WeeklyGame{},
	); errMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errMigrate)
	}
	return nil
}

// defaultRewards is the catalog seeded into an empty database.
var defaultRewards = []models.Reward{
	{Name: "Nature Caretaker Badge", Description: "Digital badge displayed on your profile", PointsRequired: 200, Category: "badge", Type: models.RewardTypeDigital},
	{Name: "Eco Warrior Badge", Description: "Digital badge for environmental champions", PointsRequired: 200, Category: "badge", Type: models.RewardTypeDigital},
	{Name: "Carbon Reducer Badge", Description: "Badge for reducing carbon footprint", PointsRequired: 200, Category: "badge", Type: models.RewardTypeDigital},
	{Name: "Green Champion Badge", Description: "Badge for sustainability leadership", PointsRequired: 200, Category: "badge", Type: models.RewardTypeDigital},
	{Name: "Sustainability Star Badge", Description: "Badge for consistent eco-friendly actions", PointsRequired: 200, Category: "badge", Type: models.RewardTypeDigital},
	{Name: "Recycling Symbol Stickers", Description: "Pack of 20 eco-friendly stickers", PointsRequired: 500, Category: "stickers", Type: models.RewardTypePhysical},
	{Name: "Save the Planet Stickers", Description: "Motivational environmental stickers", PointsRequired: 500, Category: "stickers", Type: models.RewardTypePhysical},
	{Name: "Solar Energy Stickers", Description: "Renewable energy themed stickers", PointsRequired: 500, Category: "stickers", Type: models.RewardTypePhysical},
	{Name: "Wildlife Protection Stickers", Description: "Animal conservation stickers", PointsRequired: 500, Category: "stickers", Type: models.RewardTypePhysical},
	{Name: "Water Conservation Stickers", Description: "Water saving awareness stickers", PointsRequired: 500, Category: "stickers", Type: models.RewardTypePhysical},
	{Name: "Reusable Vegetable Bags", Description: "Set of 3 eco-friendly grocery bags", PointsRequired: 1000, Category: "bags", Type: models.RewardTypePhysical},
	{Name: "Bamboo Utensil Set", Description: "Fork, spoon, knife, chopsticks set", PointsRequired: 1000, Category: "utensils", Type: models.RewardTypePhysical},
	{Name: "Stainless Steel Water Bottle", Description: "Durable reusable water bottle", PointsRequired: 1000, Category: "bottle", Type: models.RewardTypePhysical},
	{Name: "Seed Packets for Gardening", Description: "Organic vegetable and herb seeds", PointsRequired: 1000, Category: "seeds", Type: models.RewardTypePhysical},
	{Name: "Beeswax Food Wraps", Description: "Set of 3 sizes for food storage", PointsRequired: 1000, Category: "wraps", Type: models.RewardTypePhysical},
}

// SeedCatalog inserts the default reward catalog when the table is empty.
func SeedCatalog(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	var count int64
	if errCount := conn.Model(&models.Reward{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("db: count catalog: %w", errCount)
	}
	if count > 0 {
		return nil
	}
	rewards := make([]models.Reward, len(defaultRewards))
	copy(rewards, defaultRewards)
	for i := range rewards {
		rewards[i].Stock = models.UnlimitedStock
		rewards[i].Active = true
	}
	if errCreate := conn.Create(&rewards).Error; errCreate != nil {
		return fmt.Errorf("db: seed catalog: %w", errCreate)
	}
	return nil
}
