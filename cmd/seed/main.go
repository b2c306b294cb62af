// Command seed loads an administrator, a category and two sample links.
// Running it again leaves existing rows untouched.
package main

import (
	"errors"
	"log"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark_backend/internal/config"
	"bookmark_backend/internal/platform/db"
	"bookmark_backend/internal/platform/logger"
	"bookmark_backend/internal/platform/password"
)

const (
	adminEmail      = "admin@example.com"
	defaultCategory = "General"
)

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gdb, err := db.Open(cfg.DB, zl)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}

	if err := seed(gdb, password.NewBcryptHasher(password.DefaultCost), cfg.SeedAdminPassword); err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}
	zl.Info("seed completed", zap.String("admin", adminEmail))
}

type hasher interface {
	Hash(plaintext string) (string, error)
}

func seed(gdb *gorm.DB, h hasher, adminPassword string) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		admin, err := seedAdmin(tx, h, adminPassword)
		if err != nil {
			return err
		}

		category := db.CategoryModel{Name: defaultCategory, UserID: admin.ID}
		if err := tx.Where(db.CategoryModel{Name: defaultCategory, UserID: admin.ID}).
			Attrs(db.CategoryModel{Color: "#3B82F6"}).
			FirstOrCreate(&category).Error; err != nil {
			return err
		}

		samples := []db.LinkModel{
			{Title: "Google", URL: "https://www.google.com", Description: strPtr("Search engine"), UserID: admin.ID, CategoryID: &category.ID},
			{Title: "GitHub", URL: "https://github.com", Description: strPtr("Code hosting platform"), IsFavorite: true, UserID: admin.ID, CategoryID: &category.ID},
		}
		for _, l := range samples {
			link := l
			if err := tx.Where(db.LinkModel{URL: l.URL, UserID: admin.ID}).
				Attrs(l).
				FirstOrCreate(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedAdmin(tx *gorm.DB, h hasher, plaintext string) (*db.UserModel, error) {
	var admin db.UserModel
	err := tx.Where("email = ?", adminEmail).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := h.Hash(plaintext)
	if err != nil {
		return nil, err
	}
	admin = db.UserModel{Email: adminEmail, Password: hashed, Name: "Admin", Role: "ADMIN"}
	if err := tx.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func strPtr(s string) *string { return &s }
