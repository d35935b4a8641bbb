// internal/database/seed.go
package database

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/drivegear/autoparts-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// SeedCatalog inserts the demo product catalog when the products table is empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:          "Bosch Aerotwin Wiper Blade Set",
			Price:         34.99,
			Image:         "/images/products/bosch-aerotwin.jpg",
			Category:      "Wipers",
			Brand:         "Bosch",
			Description:   "All-season flat wiper blades with aerodynamic spoiler for streak-free visibility.",
			Features:      pq.StringArray{"All-season rubber compound", "Integrated spoiler", "Easy click fitting"},
			Compatibility: pq.StringArray{"VW Golf VII", "Audi A3 8V", "Seat Leon 5F"},
			Stock:         models.StockInStock,
			StockQuantity: 142,
			Weight:        0.8,
			ProductNumber: "WB-3397007462",
			ShippingDate:  "1-2 working days",
			Rating:        floatPtr(4.7),
			ReviewCount:   intPtr(318),
			Specifications: models.StringMap{
				"Length driver side":    "650 mm",
				"Length passenger side": "480 mm",
				"Connector":             "Top lock",
			},
		},
		{
			Name:          "Brembo Front Brake Disc Pair",
			Price:         100.00,
			OriginalPrice: floatPtr(129.99),
			Image:         "/images/products/brembo-discs.jpg",
			Category:      "Brakes",
			Brand:         "Brembo",
			Description:   "Vented front brake discs with UV anti-corrosion coating, sold as a pair.",
			Features:      pq.StringArray{"High-carbon cast iron", "UV coating", "ECE R90 approved"},
			Compatibility: pq.StringArray{"BMW 3 Series F30", "BMW 4 Series F32"},
			Stock:         models.StockInStock,
			StockQuantity: 36,
			Weight:        18.4,
			ProductNumber: "BD-09A77511",
			ShippingDate:  "1-2 working days",
			Rating:        floatPtr(4.9),
			ReviewCount:   intPtr(204),
			Specifications: models.StringMap{
				"Diameter":  "312 mm",
				"Thickness": "24 mm",
				"Type":      "Internally vented",
			},
		},
		{
			Name:          "Mann Filter Service Kit",
			Price:         58.50,
			Image:         "/images/products/mann-service-kit.jpg",
			Category:      "Filters",
			Brand:         "Mann-Filter",
			Description:   "Complete service kit with oil, air, cabin and fuel filters.",
			Features:      pq.StringArray{"OE quality", "Four filters included"},
			Compatibility: pq.StringArray{"Ford Focus MK3", "Ford C-Max"},
			Stock:         models.StockLowStock,
			StockQuantity: 7,
			Weight:        2.3,
			ProductNumber: "FK-W71252",
			ShippingDate:  "2-3 working days",
			Rating:        floatPtr(4.5),
			ReviewCount:   intPtr(96),
		},
		{
			Name:          "Sachs Performance Clutch Kit",
			Price:         500.00,
			OriginalPrice: floatPtr(579.00),
			Image:         "/images/products/sachs-clutch.jpg",
			Category:      "Transmission",
			Brand:         "Sachs",
			Description:   "Reinforced clutch kit rated for up to 550 Nm, includes pressure plate and release bearing.",
			Features:      pq.StringArray{"Reinforced diaphragm spring", "Organic friction lining", "Release bearing included"},
			Compatibility: pq.StringArray{"VW Golf GTI MK7", "Audi S3 8V"},
			Stock:         models.StockInStock,
			StockQuantity: 12,
			Weight:        11.2,
			ProductNumber: "CK-883089000033",
			ShippingDate:  "3-5 working days",
			Rating:        floatPtr(4.8),
			ReviewCount:   intPtr(61),
		},
		{
			Name:          "KW Variant 3 Coilover Suspension",
			Price:         1849.00,
			Image:         "/images/products/kw-v3.jpg",
			Category:      "Suspension",
			Brand:         "KW",
			Description:   "Stainless steel coilover kit with independent rebound and compression damping adjustment.",
			Features:      pq.StringArray{"Stainless steel struts", "Adjustable rebound and compression", "TUV approved lowering"},
			Compatibility: pq.StringArray{"BMW M3 G80", "BMW M4 G82"},
			Stock:         models.StockLowStock,
			StockQuantity: 3,
			Weight:        42.0,
			ProductNumber: "SU-352208AX",
			ShippingDate:  "5-7 working days",
			Rating:        floatPtr(5.0),
			ReviewCount:   intPtr(27),
		},
		{
			Name:          "NGK Laser Iridium Spark Plug",
			Price:         12.49,
			Image:         "/images/products/ngk-iridium.jpg",
			Category:      "Ignition",
			Brand:         "NGK",
			Description:   "Long-life iridium spark plug for stable combustion and improved cold starts.",
			Features:      pq.StringArray{"Iridium centre electrode", "100k km service life"},
			Compatibility: pq.StringArray{"Toyota Corolla E210", "Honda Civic FK7", "Mazda 3 BP"},
			Stock:         models.StockInStock,
			StockQuantity: 480,
			Weight:        0.1,
			ProductNumber: "IG-ILZKR7B11",
			ShippingDate:  "1-2 working days",
			Rating:        floatPtr(4.6),
			ReviewCount:   intPtr(523),
		},
		{
			Name:          "Hella LED Headlight Unit",
			Price:         423.75,
			Image:         "/images/products/hella-led.jpg",
			Category:      "Lighting",
			Brand:         "Hella",
			Description:   "Full LED headlight unit with dynamic indicator, right-hand side.",
			Compatibility: pq.StringArray{"VW Passat B8"},
			Stock:         models.StockOutOfStock,
			StockQuantity: 0,
			Weight:        4.9,
			ProductNumber: "LI-1EX011937421",
			ShippingDate:  "7-10 working days",
			Rating:        floatPtr(4.3),
			ReviewCount:   intPtr(44),
		},
		{
			Name:          "Castrol Edge 5W-30 Engine Oil 5L",
			Price:         46.20,
			Image:         "/images/products/castrol-edge.jpg",
			Category:      "Oils & Fluids",
			Brand:         "Castrol",
			Description:   "Fully synthetic engine oil with fluid titanium technology.",
			Features:      pq.StringArray{"ACEA C3", "VW 504 00 / 507 00 approval"},
			Stock:         models.StockInStock,
			StockQuantity: 230,
			Weight:        4.6,
			ProductNumber: "OL-15669E",
			ShippingDate:  "1-2 working days",
			Rating:        floatPtr(4.8),
			ReviewCount:   intPtr(712),
		},
		{
			Name:          "Continental Timing Belt Kit with Water Pump",
			Price:         164.90,
			Image:         "/images/products/conti-timing.jpg",
			Category:      "Engine",
			Brand:         "Continental",
			Description:   "Complete timing belt kit including tensioner, idlers and water pump.",
			Compatibility: pq.StringArray{"Skoda Octavia 5E", "VW Golf VII 1.6 TDI"},
			Stock:         models.StockInStock,
			StockQuantity: 54,
			Weight:        3.8,
			ProductNumber: "EN-CT1168WP1",
			ShippingDate:  "2-3 working days",
			Rating:        floatPtr(4.7),
			ReviewCount:   intPtr(158),
		},
		{
			Name:        "Thule Roof Bar Set",
			Price:       219.00,
			Image:       "/images/products/thule-bars.jpg",
			Category:    "Accessories",
			Brand:       "Thule",
			Description: "Aerodynamic aluminium roof bars with integrated locks.",
			Stock:       models.StockInStock,
			StockQuantity: 19,
			Weight:      5.5,
			ProductNumber: "AC-7105KIT",
			ShippingDate:  "2-3 working days",
		},
	}

	return db.Create(&products).Error
}
