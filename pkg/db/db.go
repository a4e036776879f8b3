package db

import (
	"fmt"
	"log"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/instill-ai/knowledge-backend/config"
)

var (
	db   *gorm.DB
	once sync.Once
)

// DSN builds the postgres connection string for the given configuration.
func DSN(databaseConfig config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=%s",
		databaseConfig.Host,
		databaseConfig.Username,
		databaseConfig.Password,
		databaseConfig.Name,
		databaseConfig.Port,
		databaseConfig.TimeZone,
	)
}

// GetConnection opens a new connection pool against the configured database.
func GetConnection(databaseConfig config.DatabaseConfig) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  DSN(databaseConfig),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening database connection: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	if databaseConfig.Pool.IdleConnections > 0 {
		sqlDB.SetMaxIdleConns(databaseConfig.Pool.IdleConnections)
	}
	if databaseConfig.Pool.MaxConnections > 0 {
		sqlDB.SetMaxOpenConns(databaseConfig.Pool.MaxConnections)
	}
	if databaseConfig.Pool.ConnLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(databaseConfig.Pool.ConnLifeTime)
	}

	return conn, nil
}

// GetSharedConnection returns the process-wide connection pool, opening it on
// first use.
func GetSharedConnection() *gorm.DB {
	once.Do(func() {
		var err error
		db, err = GetConnection(config.Config.Database)
		if err != nil {
			log.Fatal(err.Error())
		}
	})
	return db
}

// Close closes the pool behind conn.
func Close(conn *gorm.DB) {
	if conn == nil {
		return
	}
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
