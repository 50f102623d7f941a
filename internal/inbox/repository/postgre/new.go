package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"rental-ops/internal/inbox/repository"
	"rental-ops/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for inbox items.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("inbox/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inbox/repository/postgre.%s", method)
}
