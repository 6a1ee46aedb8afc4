package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates every shop table. Order matters for
// foreign key creation: referenced tables first.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// standalone
		&Customer{},
		&Employee{},
		&Vendor{},

		// core
		&Material{},
		&Job{},
		&Invoice{},
		&JobMaterial{},

		// procurement
		&PurchaseOrder{},
		&POItem{},

		// job attachments
		&Photo{},
		&WorkLog{},
		&Note{},
		&Shipment{},
	)
}
