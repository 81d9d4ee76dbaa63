package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fundkeeper/backend/internal/config"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

type FKContext string

const (
	DBContextURL FKContext = "fk-backend-url"
)

// Connect opens the SQLite database at dsn and migrates it.
func Connect(dsn string) error {
	return Open(config.DriverSQLite, dsn)
}

// Open connects to the database with the given driver, migrates the schema,
// registers the error translating callbacks and sets DB.
func Open(driver, dsn string) error {
	gormConfig := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var dialector gorm.Dialector
	switch driver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn))
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	if driver != config.DriverMySQL {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "fundkeeper:after_query", queryCallback},
		{db.Callback().Query().After("*"), "fundkeeper:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "fundkeeper:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "fundkeeper:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "fundkeeper:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "fundkeeper:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "fundkeeper:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "fundkeeper:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Remove plural "s"
		name = regexp.MustCompile("s$").ReplaceAllString(name, "")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Bank names must be unique per owner
	if strings.Contains(msg, "UNIQUE constraint failed: banks.") || (strings.Contains(msg, "Duplicate entry") && strings.Contains(msg, "bank_owner_name")) {
		db.Error = ErrBankNameNotUnique
		return
	}

	// Goal names must be unique per owner
	if strings.Contains(msg, "UNIQUE constraint failed: goals.") || (strings.Contains(msg, "Duplicate entry") && strings.Contains(msg, "goal_owner_name")) {
		db.Error = ErrGoalNameNotUnique
		return
	}

	// One allocation per goal and bank
	if strings.Contains(msg, "UNIQUE constraint failed: allocations.") || (strings.Contains(msg, "Duplicate entry") && strings.Contains(msg, "allocation_goal_bank")) {
		db.Error = ErrAllocationNotUnique
		return
	}

	if strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "a foreign key constraint fails") {
		db.Error = ErrReferenceNotFound
		return
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var sqliteErr *go_sqlite.Error

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || errors.As(db.Error, &sqliteErr) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Bank{}, Goal{}, Allocation{}, Transaction{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
