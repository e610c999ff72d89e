package games

import (
	"context"
	"testing"
	"time"

	dbpkg "github.com/ecotrack-app/ecotrack/internal/db"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"gorm.io/gorm"
)

func openGamesTestDB(t *testing.T) *gorm.DB {
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

func createGamesTestUser(t *testing.T, conn *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Username: "games-user",
		Email:    "games@example.com",
		Password: "irrelevant",
		Level:    1,
	}
	if errCreate := conn.Create(&user).Error; errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}
	return user
}

func TestCompleteCreditsPointsOncePerWeek(t *testing.T) {
	conn := openGamesTestDB(t)
	user := createGamesTestUser(t, conn)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	if errComplete := Complete(context.Background(), conn, user.ID, "plant-tracker", now); errComplete != nil {
		t.Fatalf("complete: %v", errComplete)
	}

	var got models.User
	if errFind := conn.First(&got, user.ID).Error; errFind != nil {
		t.Fatalf("load user: %v", errFind)
	}
	if got.Points != CompletionPoints {
		t.Fatalf("expected %d points, got %d", CompletionPoints, got.Points)
	}

	// Same game, same week: gate closed, balance untouched.
	errAgain := Complete(context.Background(), conn, user.ID, "plant-tracker", now.Add(48*time.Hour))
	if errAgain != ErrAlreadyPlayed {
		t.Fatalf("expected ErrAlreadyPlayed, got %v", errAgain)
	}
	if errFind := conn.First(&got, user.ID).Error; errFind != nil {
		t.Fatalf("load user: %v", errFind)
	}
	if got.Points != CompletionPoints {
		t.Fatalf("expected balance unchanged at %d, got %d", CompletionPoints, got.Points)
	}

	// A different game the same week is fine.
	if errOther := Complete(context.Background(), conn, user.ID, "recycle-quest", now); errOther != nil {
		t.Fatalf("complete other game: %v", errOther)
	}

	// The same game next week is fine again.
	if errNext := Complete(context.Background(), conn, user.ID, "plant-tracker", now.AddDate(0, 0, 7)); errNext != nil {
		t.Fatalf("complete next week: %v", errNext)
	}
}

func TestCompleteRejectsUnknownGameType(t *testing.T) {
	conn := openGamesTestDB(t)
	user := createGamesTestUser(t, conn)

	errComplete := Complete(context.Background(), conn, user.ID, "doom-scroller", time.Now())
	if errComplete != ErrInvalidGameType {
		t.Fatalf("expected ErrInvalidGameType, got %v", errComplete)
	}

	var count int64
	if errCount := conn.Model(&models.WeeklyGame{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count completions: %v", errCount)
	}
	if count != 0 {
		t.Fatalf("expected no completions, got %d", count)
	}
}

func TestWeekOfYearBoundary(t *testing.T) {
	// 2024-12-31 (Tue) and 2025-01-01 (Wed) share ISO week 1 of 2025.
	y1, w1 := WeekOf(time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC))
	y2, w2 := WeekOf(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	if y1 != 2025 || w1 != 1 {
		t.Fatalf("expected 2025 week 1 for Dec 31, got %d week %d", y1, w1)
	}
	if y1 != y2 || w1 != w2 {
		t.Fatalf("expected same bucket across new year, got %d/%d and %d/%d", y1, w1, y2, w2)
	}

	// A completion on Dec 31 blocks a replay on Jan 1.
	conn := openGamesTestDB(t)
	user := createGamesTestUser(t, conn)
	if errComplete := Complete(context.Background(), conn, user.ID, "energy-saver",
		time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC)); errComplete != nil {
		t.Fatalf("complete: %v", errComplete)
	}
	errAgain := Complete(context.Background(), conn, user.ID, "energy-saver",
		time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	if errAgain != ErrAlreadyPlayed {
		t.Fatalf("expected ErrAlreadyPlayed across year boundary, got %v", errAgain)
	}
}

func TestValidGameType(t *testing.T) {
	for _, name := range []string{"plant-tracker", "recycle-quest", "energy-saver"} {
		if !ValidGameType(name) {
			t.Fatalf("expected %q valid", name)
		}
	}
	if ValidGameType("") || ValidGameType("PLANT-TRACKER") {
		t.Fatal("expected unknown identifiers rejected")
	}
}
