package main

import (
	"github.com/avtorazbor/internal/config"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"

	"github.com/shopspring/decimal"
)

// Seeds a demo catalog: suppliers, parts with compatibility maps, and
// warehouse placements. Safe to re-run, existing rows are kept.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	suppliers := []models.Supplier{
		{
			Name: "AutoDonor Nord",
			ContactInfo: models.JSON(map[string]interface{}{
				"phone": "+7 812 555-01-10",
				"city":  "Saint Petersburg",
			}),
			Rating: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.6)),
		},
		{
			Name: "RazborCenter",
			ContactInfo: models.JSON(map[string]interface{}{
				"phone": "+7 495 555-22-33",
				"city":  "Moscow",
			}),
			Rating: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.2)),
		},
		{
			Name: "EuroParts Trade",
			ContactInfo: models.JSON(map[string]interface{}{
				"phone": "+49 30 555-77-88",
				"city":  "Berlin",
			}),
			Rating: models.NewMoneyFromDecimal(decimal.NewFromFloat(3.9)),
		},
	}

	for i := range suppliers {
		var existing models.Supplier
		if err := models.DB.Where("name = ?", suppliers[i].Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&suppliers[i]).Error; err != nil {
				stdLog.Printf("failed to create supplier %s: %v", suppliers[i].Name, err)
				continue
			}
			stdLog.Printf("created supplier: %s", suppliers[i].Name)
		} else {
			suppliers[i] = existing
			stdLog.Printf("supplier already exists: %s", existing.Name)
		}
	}

	parts := []models.Part{
		{
			Name:        "Front brake disc",
			Description: "Vented front brake disc, 280mm, light wear.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(45.00)),
			Compatibility: models.JSON(map[string]interface{}{
				"make":   "Volkswagen",
				"models": "Golf V, Golf VI, Jetta",
				"years":  "2003-2012",
			}),
			Stock:      8,
			SupplierID: &suppliers[0].ID,
		},
		{
			Name:        "Alternator 120A",
			Description: "Tested, 12 months warranty.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(110.50)),
			Compatibility: models.JSON(map[string]interface{}{
				"make":   "Ford",
				"models": "Focus II, C-Max",
				"years":  "2004-2011",
			}),
			Stock:      3,
			SupplierID: &suppliers[1].ID,
		},
		{
			Name:        "Right headlight assembly",
			Description: "Halogen, minor scuffs on the lens.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(75.00)),
			Compatibility: models.JSON(map[string]interface{}{
				"make":   "Toyota",
				"models": "Corolla E150",
				"years":  "2006-2013",
			}),
			Stock:      2,
			SupplierID: &suppliers[1].ID,
		},
		{
			Name:        "Rear shock absorber",
			Description: "Gas-filled, sold as a pair.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(38.90)),
			Compatibility: models.JSON(map[string]interface{}{
				"make":   "Renault",
				"models": "Logan, Sandero",
				"years":  "2005-2015",
			}),
			Stock:      12,
			SupplierID: &suppliers[2].ID,
		},
	}

	for i := range parts {
		var existing models.Part
		if err := models.DB.Where("name = ?", parts[i].Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&parts[i]).Error; err != nil {
				stdLog.Printf("failed to create part %s: %v", parts[i].Name, err)
				continue
			}
			stdLog.Printf("created part: %s", parts[i].Name)
		} else {
			parts[i] = existing
			stdLog.Printf("part already exists: %s", existing.Name)
		}
	}

	inventories := []models.Inventory{
		{PartID: parts[0].ID, SupplierID: parts[0].SupplierID, Quantity: 8, Location: "Rack A-12"},
		{PartID: parts[1].ID, SupplierID: parts[1].SupplierID, Quantity: 3, Location: "Rack B-03"},
		{PartID: parts[2].ID, SupplierID: parts[2].SupplierID, Quantity: 2, Location: "Shelf C-07"},
		{PartID: parts[3].ID, SupplierID: parts[3].SupplierID, Quantity: 12, Location: "Rack A-01"},
	}

	for i := range inventories {
		if inventories[i].PartID == 0 {
			continue
		}
		var existing models.Inventory
		if err := models.DB.Where("part_id = ? AND location = ?", inventories[i].PartID, inventories[i].Location).First(&existing).Error; err != nil {
			if err := models.DB.Create(&inventories[i]).Error; err != nil {
				stdLog.Printf("failed to create inventory for part %d: %v", inventories[i].PartID, err)
				continue
			}
			stdLog.Printf("created inventory: part %d at %s", inventories[i].PartID, inventories[i].Location)
		} else {
			stdLog.Printf("inventory already exists: part %d at %s", existing.PartID, existing.Location)
		}
	}

	stdLog.Println("seed finished")
}
