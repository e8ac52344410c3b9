package config

import (
	"github.com/andrewmackie/graph-explorer-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the database and migrates the schema. Postgres is used when
// DATABASE_URL is set; otherwise a local sqlite file keeps development
// self-contained. The FK cascade and no-self-loop check behave the same on
// both engines, provided sqlite has foreign keys switched on.
func Connect() error {
	LoadEnvironment()

	var dialector gorm.Dialector
	if Env.IsDevelopment {
		// sqlite ships with foreign keys off; cascade delete depends on them
		dialector = sqlite.Open(Env.SQLitePath + "?_foreign_keys=on")
	} else {
		dialector = postgres.Open(Env.DatabaseURL)
	}

	var err error
	Database, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(&models.Node{}, &models.Edge{})
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
