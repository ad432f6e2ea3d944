// internal/storage/factory.go
package storage

import (
	"fmt"

	gormdb "gorm.io/gorm"

	storagegorm "github.com/guiate/guiate/internal/storage/gorm"
	"github.com/guiate/guiate/internal/storage/memory"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(storageType string, db *gormdb.DB) (Backend, error) {
	switch storageType {
	case "gorm", "postgres", "sqlite":
		if db == nil {
			return nil, fmt.Errorf("storage type %q requires a database connection", storageType)
		}
		return storagegorm.New(db), nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}
