package config

import (
	"fmt"

	"gorm.io/driver/postgres"

	"gorm.io/gorm"
)

// DSN is the postgres connection string for the archive database.
func (db *DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=5",
		db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
	)
}

// GormConnect opens the archive database and migrates the given tables.
func (db *DB) GormConnect(tables ...any) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(db.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if len(tables) == 0 {
		return conn, nil
	}
	if err := conn.AutoMigrate(tables...); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}
	return conn, nil
}
