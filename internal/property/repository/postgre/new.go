package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"rental-ops/internal/property/repository"
	"rental-ops/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for properties.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("property/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("property/repository/postgre.%s", method)
}
