package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/auth"
	"github.com/arjune867/kriukesnack/models"
	"github.com/arjune867/kriukesnack/routes"
)

func main() {
	log.Println("✅ Starting Kriuké Snack storefront...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Category{},
		&models.DiscountCode{},
		&models.Product{},
		&models.Variant{},
		&models.Promotion{},
		&models.QuickAction{},
		&models.Review{},
		&models.WishlistEntry{},
		&models.CartSnapshot{},
		&models.ShopperSession{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the starter catalog and the admin account
	if err := models.SeedDefaults(db); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	if err := auth.EnsureAdmin(db); err != nil {
		log.Fatalf("❌ Admin setup failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product/promotion images
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	routes.SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("✅ Listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

// initDatabase opens Postgres when DATABASE_URL is set, otherwise a local
// SQLite file (KRIUKE_DB, default kriuke.db).
func initDatabase() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("KRIUKE_DB")
		if path == "" {
			path = "kriuke.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	return db
}
