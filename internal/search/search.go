/*

Package search provides index queries for generated masks.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package search

import (
	"github.com/jinzhu/gorm"

	"github.com/facemask/facemask/internal/entity"
	"github.com/facemask/facemask/internal/event"
)

var log = event.Log

// Db returns the database connection.
func Db() *gorm.DB {
	return entity.Db()
}
