package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
	JWTTTL    time.Duration
	Mail      MailConfig
}

type MailConfig struct {
	APIKey    string
	Domain    string
	FromEmail string
}

// Load reads .env (if present) and assembles the runtime configuration.
func Load() *Config {
	_ = godotenv.Load()

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil {
		ttlHours = 24
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "food_ordering.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "food_ordering_super_secret")),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,
		Mail: MailConfig{
			APIKey:    getEnv("MAILGUN_API_KEY", ""),
			Domain:    getEnv("MAILGUN_DOMAIN", ""),
			FromEmail: getEnv("MAILGUN_FROM_EMAIL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var DB *gorm.DB

// InitDB opens the database and migrates all models.
func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs auto-migration for every model. Split out so tests can
// migrate an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.Category{},
		&models.Restaurant{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
}
