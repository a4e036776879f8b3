package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/instill-ai/knowledge-backend/config"
	"github.com/instill-ai/knowledge-backend/pkg/db/migration"
	"github.com/instill-ai/knowledge-backend/pkg/logger"

	database "github.com/instill-ai/knowledge-backend/pkg/db"
)

func dbExistsOrCreate(databaseConfig config.DatabaseConfig) error {
	datasource := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%d sslmode=disable TimeZone=%s",
		databaseConfig.Host,
		databaseConfig.Username,
		databaseConfig.Password,
		databaseConfig.Port,
		databaseConfig.TimeZone,
	)

	db, err := sql.Open("postgres", datasource)
	if err != nil {
		return err
	}

	defer db.Close()

	// Open() may just validate its arguments without creating a connection to the database.
	// To verify that the data source name is valid, call Ping().
	if err = db.Ping(); err != nil {
		return err
	}

	var count int
	if err := db.QueryRow("SELECT count(*) FROM pg_catalog.pg_database WHERE datname = $1", databaseConfig.Name).Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	fmt.Printf("Create database %s\n", databaseConfig.Name)
	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %q;", databaseConfig.Name)); err != nil {
		return err
	}

	return nil
}

func main() {
	if err := config.Init(config.ParseConfigFlag()); err != nil {
		log.Fatal(err.Error())
	}

	databaseConfig := config.Config.Database
	if err := dbExistsOrCreate(databaseConfig); err != nil {
		log.Fatal(err.Error())
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?%s",
		url.QueryEscape(databaseConfig.Username),
		url.QueryEscape(databaseConfig.Password),
		databaseConfig.Host,
		databaseConfig.Port,
		databaseConfig.Name,
		"sslmode=disable",
	)

	source, err := iofs.New(migration.FS, ".")
	if err != nil {
		log.Fatal(err.Error())
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer m.Close()

	expectedVersion := databaseConfig.Version
	if expectedVersion == 0 {
		expectedVersion = migration.TargetSchemaVersion
	}

	curVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal(err.Error())
	}

	fmt.Printf("Expected migration version is %d\n", expectedVersion)
	fmt.Printf("The current schema version is %d, and dirty flag is %t\n", curVersion, dirty)
	if dirty {
		log.Fatal("the database's dirty flag is set, please fix it")
	}

	logger, _ := logger.GetZapLogger(context.Background())
	db, err := database.GetConnection(databaseConfig)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer database.Close(db)

	codeMigrator := &migration.CodeMigrator{
		Logger: logger,
		DB:     db,
	}

	step := curVersion
	for {
		if expectedVersion <= step {
			fmt.Printf("Migration to version %d complete\n", expectedVersion)
			break
		}

		fmt.Printf("Step up to version %d\n", step+1)
		if err := m.Steps(1); err != nil {
			log.Fatal(err.Error())
		}

		step, _, err = m.Version()
		if err != nil {
			log.Fatal(err.Error())
		}

		if err := codeMigrator.Migrate(step); err != nil {
			log.Fatal(err.Error())
		}
	}
}
