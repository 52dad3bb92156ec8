/*

Package entity contains mask records and the database layer they are stored in.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package entity

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/facemask/facemask/internal/event"
)

var log = event.Log

// Values is a shortcut for map[string]interface{}.
type Values map[string]interface{}

// DbProvider returns the database connection.
type DbProvider interface {
	Db() *gorm.DB
}

var dbProvider DbProvider

// SetDbProvider sets the provider of the database connection.
func SetDbProvider(p DbProvider) {
	dbProvider = p
}

// HasDbProvider tests if a database connection provider is set.
func HasDbProvider() bool {
	return dbProvider != nil
}

// Db returns the database connection.
func Db() *gorm.DB {
	if dbProvider == nil {
		log.Fatal("entity: no database connection provider")
	}

	return dbProvider.Db()
}

// UnscopedDb returns an unscoped database connection.
func UnscopedDb() *gorm.DB {
	return Db().Unscoped()
}

// MigrateDb creates or updates the database schema.
func MigrateDb() {
	Db().AutoMigrate(
		&MaskFile{},
	)
}

// TimePointer returns a pointer to the current time.
func TimePointer() *time.Time {
	t := time.Now()
	return &t
}
