package account

import (
	"context"
	"testing"

	dbpkg "github.com/ecotrack-app/ecotrack/internal/db"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/security"
	"gorm.io/gorm"
)

func openAccountTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, errOpen := dbpkg.Open(":memory:")
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := dbpkg.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}
	return conn
}

// seedAccountWithHistory creates a user with rows in every dependent table.
func seedAccountWithHistory(t *testing.T, conn *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Username:  "reset-user",
		Email:     "reset@example.com",
		Password:  "old-hash",
		Points:    350,
		Level:     4,
		Suspended: true,
	}
	if errCreate := conn.Create(&user).Error; errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}

	reward := models.Reward{Name: "Badge", PointsRequired: 200, Category: "badge", Type: models.RewardTypeDigital, Stock: models.UnlimitedStock, Active: true}
	if errCreate := conn.Create(&reward).Error; errCreate != nil {
		t.Fatalf("create reward: %v", errCreate)
	}

	rows := []any{
		&models.QuizResult{UserID: user.ID, Score: 88, CarbonFootprint: 7.6, Answers: []byte(`[0,1]`)},
		&models.PointEntry{UserID: user.ID, Points: 10, Description: "Completed carbon footprint quiz"},
		&models.Submission{UserID: user.ID, Filename: "proof.jpg", Description: "composting"},
		&models.RewardClaim{UserID: user.ID, RewardID: reward.ID, Status: models.ClaimStatusPending},
		&models.CarbonCalculation{UserID: user.ID, TotalFootprint: 7.6},
		&models.WeeklyGame{UserID: user.ID, GameType: "plant-tracker", WeekNumber: 35, Year: 2026},
	}
	for _, row := range rows {
		if errCreate := conn.Create(row).Error; errCreate != nil {
			t.Fatalf("create dependent row: %v", errCreate)
		}
	}
	return user
}

func countRows(t *testing.T, conn *gorm.DB, model any, userID uint64) int64 {
	t.Helper()
	var count int64
	if errCount := conn.Model(model).Where("user_id = ?", userID).Count(&count).Error; errCount != nil {
		t.Fatalf("count rows: %v", errCount)
	}
	return count
}

func TestResetWipesEverything(t *testing.T) {
	conn := openAccountTestDB(t)
	user := seedAccountWithHistory(t, conn)

	if errReset := Reset(context.Background(), conn, "reset-user", "fresh-password"); errReset != nil {
		t.Fatalf("reset: %v", errReset)
	}

	for _, model := range []any{
		&models.QuizResult{},
		&models.PointEntry{},
		&models.Submission{},
		&models.RewardClaim{},
		&models.CarbonCalculation{},
		&models.WeeklyGame{},
	} {
		if count := countRows(t, conn, model, user.ID); count != 0 {
			t.Fatalf("expected %T rows wiped, got %d", model, count)
		}
	}

	var got models.User
	if errFind := conn.First(&got, user.ID).Error; errFind != nil {
		t.Fatalf("load user: %v", errFind)
	}
	if got.Points != 0 || got.Level != 1 || got.Suspended {
		t.Fatalf("expected fresh account state, got points=%d level=%d suspended=%v",
			got.Points, got.Level, got.Suspended)
	}
	if !security.CheckPassword(got.Password, "fresh-password") {
		t.Fatal("expected new password to verify")
	}
	if security.CheckPassword(got.Password, "old-hash") {
		t.Fatal("expected old credential rejected")
	}
}

func TestResetUnknownUsername(t *testing.T) {
	conn := openAccountTestDB(t)

	if errReset := Reset(context.Background(), conn, "nobody", "fresh-password"); errReset != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", errReset)
	}
}

func TestDeleteRemovesUserAndDependents(t *testing.T) {
	conn := openAccountTestDB(t)
	user := seedAccountWithHistory(t, conn)

	if errDelete := Delete(context.Background(), conn, user.ID); errDelete != nil {
		t.Fatalf("delete: %v", errDelete)
	}

	var count int64
	if errCount := conn.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error; errCount != nil {
		t.Fatalf("count users: %v", errCount)
	}
	if count != 0 {
		t.Fatal("expected user row removed")
	}
	if rows := countRows(t, conn, &models.PointEntry{}, user.ID); rows != 0 {
		t.Fatalf("expected ledger wiped, got %d rows", rows)
	}

	if errDelete := Delete(context.Background(), conn, user.ID); errDelete != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", errDelete)
	}
}
