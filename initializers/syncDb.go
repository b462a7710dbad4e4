package initializers

import (
	"log"

	"github.com/laibaafzal969/Bakery-BE/models"
	"gorm.io/gorm"
)

// SyncDatabase creates or extends the schema to match the declared
// models. The order_products join table comes from the many2many tag on
// Order. Existing data is left in place.
func SyncDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.Contact{}); err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
