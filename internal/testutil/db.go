// Package testutil opens throwaway SQLite databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	"github.com/MobeenM17/SuswearGProject/pkg/database"
)

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// NewDB returns an in-memory database private to t, migrated and seeded
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", unsafeName.ReplaceAllString(t.Name(), "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db, "sqlite", zap.NewNop(), model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := repository.NewRepository(db).SeedReferenceData(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return db
}

// CreateUser inserts a user plus the shadow row matching its role
func CreateUser(t *testing.T, db *gorm.DB, name, email, passwordHash, role string) *model.User {
	t.Helper()

	u := &model.User{FullName: name, Email: email, PasswordHash: passwordHash, Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	switch role {
	case model.RoleDonor:
		if err := db.Create(&model.Donor{RoleAccount: model.AccountOf(u)}).Error; err != nil {
			t.Fatalf("create donor: %v", err)
		}
	case model.RoleStaff:
		if err := db.Create(&model.Staff{RoleAccount: model.AccountOf(u)}).Error; err != nil {
			t.Fatalf("create staff: %v", err)
		}
	}
	return u
}

// CategoryID looks up a seeded category
func CategoryID(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()

	var c model.Category
	if err := db.Where("name = ?", name).First(&c).Error; err != nil {
		t.Fatalf("category %q: %v", name, err)
	}
	return c.CategoryID
}

// CreateDonation inserts a donation directly, bypassing the lifecycle service
func CreateDonation(t *testing.T, db *gorm.DB, donorID int, category, status string, weightKg float64) *model.Donation {
	t.Helper()

	d := &model.Donation{
		DonorID:     donorID,
		Description: category + " item",
		CategoryID:  CategoryID(t, db, category),
		WeightKg:    weightKg,
		Status:      status,
	}
	if err := db.Omit("Category", "Photos").Create(d).Error; err != nil {
		t.Fatalf("create donation: %v", err)
	}
	return d
}
