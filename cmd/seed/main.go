package main

import (
	"context"
	"log"
	"os"

	"invtrack/internal/database"
	"invtrack/internal/domain"
	"invtrack/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "invtrack.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (equipment first, it references rooms)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM equipment_types")
	db.Exec("DELETE FROM rooms")

	ctx := context.Background()

	// ================== EQUIPMENT TYPES ==================
	log.Println("Seeding equipment types...")
	typeRepo := repository.NewEquipmentTypeRepository(db)
	if err := typeRepo.SeedDefaults(ctx); err != nil {
		log.Fatal("seeding equipment types failed:", err)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	roomRepo := repository.NewRoomRepository(db)

	rooms := []domain.Room{
		{Name: "Server Room", Location: "Basement, B-02"},
		{Name: "Front Office", Location: "Ground floor"},
		{Name: "Lab 101", Location: "First floor, east wing"},
		{Name: "Storage", Location: "Second floor"},
	}
	for i := range rooms {
		if err := roomRepo.Create(ctx, &rooms[i]); err != nil {
			log.Fatal("creating room failed:", err)
		}
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")
	equipmentRepo := repository.NewEquipmentRepository(db)

	equipment := []domain.Equipment{
		{Name: "Dell U2412", Type: "Monitor", Cost: 199.99, RoomID: rooms[1].ID, RegisteredBy: "J. Doe"},
		{Name: "HP LaserJet Pro", Type: "Printer", Cost: 329.00, RoomID: rooms[1].ID, RegisteredBy: "J. Doe"},
		{Name: "Cisco RV340", Type: "Router", Cost: 412.50, RoomID: rooms[0].ID, RegisteredBy: "A. Smith"},
		{Name: "OptiPlex 7090", Type: "Desktop PC", Cost: 899.00, RoomID: rooms[2].ID, RegisteredBy: "A. Smith"},
		{Name: "LG 27UK850", Type: "Monitor", Cost: 449.99, RoomID: rooms[2].ID, RegisteredBy: "M. Brown"},
	}
	for i := range equipment {
		if err := equipmentRepo.Create(ctx, &equipment[i]); err != nil {
			log.Fatal("creating equipment failed:", err)
		}
	}

	log.Printf("Done: %d rooms, %d equipment records", len(rooms), len(equipment))
}
