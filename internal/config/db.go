package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"

	"github.com/facemask/facemask/internal/entity"
)

// DriverSqlite is the name of the embedded database driver.
const DriverSqlite = "sqlite3"

// DatabaseDsn returns the index database data source name.
func (c *Config) DatabaseDsn() string {
	if c.options.DatabaseDsn != "" {
		return c.options.DatabaseDsn
	}

	return filepath.Join(c.StoragePath(), "index.db") + "?_busy_timeout=5000"
}

// Db returns the database connection.
func (c *Config) Db() *gorm.DB {
	if c.db == nil {
		log.Fatal("config: database not connected")
	}

	return c.db
}

// CloseDb closes the database connection.
func (c *Config) CloseDb() error {
	if c.db == nil {
		return nil
	}

	err := c.db.Close()

	if err == nil {
		c.db = nil
	}

	return err
}

// InitDb registers the connection provider and migrates the schema.
func (c *Config) InitDb() {
	entity.SetDbProvider(c)
	entity.MigrateDb()
}

// connectDb opens the index database connection.
func (c *Config) connectDb() error {
	dbDsn := c.DatabaseDsn()

	db, err := gorm.Open(DriverSqlite, dbDsn)

	if err != nil || db == nil {
		return fmt.Errorf("config: %s (open database)", err)
	}

	db.LogMode(c.Trace())
	db.SetLogger(log)

	db.DB().SetMaxOpenConns(1)
	db.DB().SetMaxIdleConns(1)
	db.DB().SetConnMaxLifetime(time.Hour)

	c.db = db

	return nil
}
