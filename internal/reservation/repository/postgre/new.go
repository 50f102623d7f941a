package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"rental-ops/internal/reservation/repository"
	"rental-ops/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for reservations.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("reservation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("reservation/repository/postgre.%s", method)
}
