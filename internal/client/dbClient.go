package client

import (
	"log"
	"strings"
	"time"

	"github.com/anujthakur2004/Fashion-Hub/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens MySQL when the URL looks like a DSN, otherwise treats it
// as a SQLite file path (empty means a local dev database).
func InitDB(databaseURL string) *gorm.DB {
	var dialector gorm.Dialector
	switch {
	case databaseURL == "":
		dialector = sqlite.Open("fashionhub.db")
	case strings.Contains(databaseURL, "@tcp("):
		dialector = mysql.Open(databaseURL)
	default:
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
