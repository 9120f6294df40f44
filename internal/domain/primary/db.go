// Package primary owns the relational database, the source of truth
// for every record. The document mirror is fed from here and never
// consulted for correctness.
package primary

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"notenest/internal/domain/entity"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Init opens the primary database and migrates the schema.
// MySQL is used in deployments; SQLite covers local dev and tests.
func Init(driver, dsn string) (*gorm.DB, error) {
	dialector, err := openDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Note{},
		&entity.NoteFile{},
		&entity.Comment{},
		&entity.Session{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		// The pragma keeps ON DELETE CASCADE working; SQLite does not
		// enforce foreign keys unless asked.
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return sqlite.Open(dsn + sep + "_pragma=foreign_keys(1)"), nil
	default:
		return nil, fmt.Errorf("primary: unknown database driver %q", driver)
	}
}
