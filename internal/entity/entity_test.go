package entity

import (
	"os"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
)

type testProvider struct {
	db *gorm.DB
}

func (p *testProvider) Db() *gorm.DB {
	return p.db
}

func TestMain(m *testing.M) {
	db, err := gorm.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatalf("entity: %s (open test database)", err)
	}

	db.LogMode(false)

	// The in-memory database exists per connection.
	db.DB().SetMaxOpenConns(1)

	SetDbProvider(&testProvider{db: db})
	MigrateDb()

	code := m.Run()

	_ = db.Close()

	os.Exit(code)
}

func TestHasDbProvider(t *testing.T) {
	if !HasDbProvider() {
		t.Fatal("test database provider should be set")
	}
}
