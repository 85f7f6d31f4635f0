package main

import (
	"log"
	"os"

	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/model"
	"antrian-truk-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the initial admin account, the physical gates and a few sample
// customers. Safe to run twice: existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAdmin(db)
	seedGates(db)
	seedCustomers(db)

	log.Println("Seeding completed.")
}

func seedAdmin(db *gorm.DB) {
	username := os.Getenv("SEED_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	db.Model(&model.AdminUser{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Printf("Admin %q already exists, skipping", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash admin password:", err)
	}

	admin := model.AdminUser{
		Id:           uuid.New(),
		Name:         "Administrator",
		Position:     "Superadmin",
		Phone:        "-",
		Role:         string(entity.RoleAdmin),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Error: Failed to seed admin:", err)
	}
	log.Printf("Seeded admin %q", username)
}

func seedGates(db *gorm.DB) {
	gates := []model.Gate{
		{Id: uuid.New(), GateNo: "G1", Area: "Utara", Warehouse: string(entity.WarehouseWH1)},
		{Id: uuid.New(), GateNo: "G2", Area: "Utara", Warehouse: string(entity.WarehouseWH1)},
		{Id: uuid.New(), GateNo: "G1", Area: "Selatan", Warehouse: string(entity.WarehouseWH2)},
		{Id: uuid.New(), GateNo: "G2", Area: "Selatan", Warehouse: string(entity.WarehouseWH2)},
		{Id: uuid.New(), GateNo: "G1", Area: "Khusus", Warehouse: string(entity.WarehouseDG)},
	}

	for _, gate := range gates {
		var count int64
		db.Model(&model.Gate{}).
			Where("gate_no = ? AND warehouse = ?", gate.GateNo, gate.Warehouse).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&gate).Error; err != nil {
			log.Printf("Warn: Failed to seed gate %s/%s: %v", gate.GateNo, gate.Warehouse, err)
		}
	}
	log.Println("Seeded gates")
}

func seedCustomers(db *gorm.DB) {
	names := []string{"PT Maju Jaya", "PT Sinar Abadi", "CV Lintas Nusantara"}

	for _, name := range names {
		var count int64
		db.Model(&model.Customer{}).Where("name = ?", name).Count(&count)
		if count > 0 {
			continue
		}
		customer := model.Customer{Id: uuid.New(), Name: name}
		if err := db.Create(&customer).Error; err != nil {
			log.Printf("Warn: Failed to seed customer %q: %v", name, err)
		}
	}
	log.Println("Seeded customers")
}
