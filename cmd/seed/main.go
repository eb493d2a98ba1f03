package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"lostfound/internal/config"
	"lostfound/internal/db"
	"lostfound/internal/model"
	"lostfound/internal/repository"
	"lostfound/internal/service"
)

// Fixture is the seed file layout.
type Fixture struct {
	Admins []SeedAdmin `yaml:"admins"`
	Owners []SeedOwner `yaml:"owners"`
}

// SeedAdmin holds a plain-text password that is hashed before storage.
type SeedAdmin struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// SeedOwner represents an owner record.
type SeedOwner struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	DOB   string `yaml:"dob"`
}

func main() {
	path := flag.String("file", "cmd/seed/seed.example.yaml", "path to the YAML seed fixture")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	fixture, err := loadFixture(*path)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}
	log.Printf("Loaded %d admins and %d owners from %s", len(fixture.Admins), len(fixture.Owners), *path)

	admins, created, err := seed(context.Background(),
		repository.NewAdminRepository(gormDB),
		repository.NewOwnerRepository(gormDB),
		fixture,
	)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admins upserted: %d", admins)
	log.Printf("  - New owners created: %d", created)
	log.Printf("  - Existing owners skipped: %d", len(fixture.Owners)-created)
}

// loadFixture reads and decodes a YAML seed file.
func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &fixture, nil
}

// seed upserts admins and creates owners whose email is not yet registered.
// Existing owners are left untouched.
func seed(ctx context.Context, adminRepo repository.AdminRepository, ownerRepo repository.OwnerRepository, fixture *Fixture) (admins int, created int, err error) {
	for _, a := range fixture.Admins {
		hash, err := service.HashPassword(a.Password)
		if err != nil {
			return admins, created, fmt.Errorf("error hashing password for %s: %w", a.Email, err)
		}
		if err := adminRepo.Upsert(ctx, &model.Admin{Name: a.Name, Email: a.Email, PasswordHash: hash}); err != nil {
			return admins, created, fmt.Errorf("error upserting admin %s: %w", a.Email, err)
		}
		admins++
	}

	for _, o := range fixture.Owners {
		_, err := ownerRepo.FindByEmail(ctx, o.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return admins, created, fmt.Errorf("error checking owner %s: %w", o.Email, err)
		}
		if err := ownerRepo.Create(ctx, &model.Owner{Name: o.Name, Email: o.Email, DOB: o.DOB}); err != nil {
			return admins, created, fmt.Errorf("error creating owner %s: %w", o.Email, err)
		}
		created++
	}

	return admins, created, nil
}
