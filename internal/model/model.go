package model

// Tables lists every persisted entity, in dependency order, for auto-migration.
func Tables() []any {
	return []any{
		&Property{},
		&ReservationRecord{},
		&Task{},
		&InboxItem{},
	}
}
