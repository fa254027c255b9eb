package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/connect2study/server/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.StudySession{},
		&models.BookedSession{},
		&models.Note{},
		&models.Material{},
		&models.Review{},
		&models.Payment{},
		&models.Announcement{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}
