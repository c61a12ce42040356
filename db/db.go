package db

import (
	"os"

	"inkwell-backend/models"
	"inkwell-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: impossible to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL not defined")
		panic("Database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	if err = ensureSlugDayIndex(DB); err != nil {
		utils.LogError(err, "Error creating the slug uniqueness index")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}

// ensureSlugDayIndex enforces the one-slug-per-publish-day rule the detail
// route relies on. AutoMigrate tags cannot express an expression index, so
// the statement is issued directly. The AT TIME ZONE cast keeps the
// expression immutable, which Postgres requires for index expressions.
func ensureSlugDayIndex(db *gorm.DB) error {
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_posts_slug_publish_day ON posts (slug, ((publish AT TIME ZONE 'UTC')::date))`).Error
}
