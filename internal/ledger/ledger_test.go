package ledger

import (
	"testing"

	dbpkg "github.com/ecotrack-app/ecotrack/internal/db"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"gorm.io/gorm"
)

func openLedgerTestDB(t *testing.T) *gorm.DB {
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

func createLedgerTestUser(t *testing.T, conn *gorm.DB, points int) models.User {
	t.Helper()
	user := models.User{
		Username: "ledger-user",
		Email:    "ledger@example.com",
		Password: "irrelevant",
		Points:   points,
		Level:    1,
	}
	if errCreate := conn.Create(&user).Error; errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}
	return user
}

func TestCreditUpdatesBalanceAndAppendsEntry(t *testing.T) {
	conn := openLedgerTestDB(t)
	user := createLedgerTestUser(t, conn, 0)

	if errCredit := Credit(conn, user.ID, 10, "Completed carbon footprint quiz"); errCredit != nil {
		t.Fatalf("credit: %v", errCredit)
	}

	var got models.User
	if errFind := conn.First(&got, user.ID).Error; errFind != nil {
		t.Fatalf("load user: %v", errFind)
	}
	if got.Points != 10 {
		t.Fatalf("expected balance 10, got %d", got.Points)
	}

	var entries []models.PointEntry
	if errList := conn.Where("user_id = ?", user.ID).Find(&entries).Error; errList != nil {
		t.Fatalf("list entries: %v", errList)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(entries))
	}
	if entries[0].Points != 10 || entries[0].Description != "Completed carbon footprint quiz" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestCreditUnknownUser(t *testing.T) {
	conn := openLedgerTestDB(t)

	if errCredit := Credit(conn, 999, 10, "x"); errCredit != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", errCredit)
	}

	var count int64
	if errCount := conn.Model(&models.PointEntry{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count entries: %v", errCount)
	}
	if count != 0 {
		t.Fatalf("expected no ledger entries, got %d", count)
	}
}

func TestDebitKeepsBalanceNonNegative(t *testing.T) {
	conn := openLedgerTestDB(t)
	user := createLedgerTestUser(t, conn, 100)

	if errDebit := Debit(conn, user.ID, 101); errDebit != ErrInsufficientPoints {
		t.Fatalf("expected ErrInsufficientPoints, got %v", errDebit)
	}

	var got models.User
	if errFind := conn.First(&got, user.ID).Error; errFind != nil {
		t.Fatalf("load user: %v", errFind)
	}
	if got.Points != 100 {
		t.Fatalf("expected balance unchanged at 100, got %d", got.Points)
	}

	if errDebit := Debit(conn, user.ID, 100); errDebit != nil {
		t.Fatalf("debit exact balance: %v", errDebit)
	}
	if errFind := conn.First(&got, user.ID).Error; errFind != nil {
		t.Fatalf("load user: %v", errFind)
	}
	if got.Points != 0 {
		t.Fatalf("expected balance 0, got %d", got.Points)
	}
}

func TestDebitUnknownUser(t *testing.T) {
	conn := openLedgerTestDB(t)

	if errDebit := Debit(conn, 999, 1); errDebit != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", errDebit)
	}
}

func TestNonPositiveAmounts(t *testing.T) {
	conn := openLedgerTestDB(t)
	user := createLedgerTestUser(t, conn, 50)

	for _, amount := range []int{0, -5} {
		if errCredit := Credit(conn, user.ID, amount, "x"); errCredit != ErrInvalidAmount {
			t.Fatalf("credit %d: expected ErrInvalidAmount, got %v", amount, errCredit)
		}
		if errDebit := Debit(conn, user.ID, amount); errDebit != ErrInvalidAmount {
			t.Fatalf("debit %d: expected ErrInvalidAmount, got %v", amount, errDebit)
		}
	}

	var got models.User
	if errFind := conn.First(&got, user.ID).Error; errFind != nil {
		t.Fatalf("load user: %v", errFind)
	}
	if got.Points != 50 {
		t.Fatalf("expected balance unchanged at 50, got %d", got.Points)
	}
}
