package core

import (
	"fmt"
	"os"

	"stayflow/internal/infra/persistence/memory"
	"stayflow/internal/infra/persistence/postgres"
	"stayflow/internal/infra/persistence/sqlite"
	"stayflow/pkg/domain"
)

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file, the local persisted store
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server, the remote record store
)

type (
	Transaction     = domain.Transaction
	TransactionView = domain.TransactionView
	PersistentStore = domain.PersistentStore
)

// OpenPersistentStore selects a backend using environment variables.
// Defaults to sqlite when unset.
//
//	STAYFLOW_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	STAYFLOW_SQLITE_PATH: path to sqlite file (default ./stayflow.db)
//	STAYFLOW_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenPersistentStore(engine *RulesEngine) (PersistentStore, error) {
	driver := os.Getenv("STAYFLOW_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageSQLite)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(engine), nil
	case StorageSQLite:
		path := os.Getenv("STAYFLOW_SQLITE_PATH")
		return sqlite.NewStore(path, engine)
	case StoragePostgres:
		dsn := os.Getenv("STAYFLOW_POSTGRES_DSN")
		return postgres.NewStore(dsn, engine)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
