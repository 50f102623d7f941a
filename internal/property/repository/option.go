package repository

type CreatePropertyOptions struct {
	Name       string
	Address    string
	Timezone   string
	CalendarID string
}

// GetOnePropertyOptions filters a single property. Non-empty fields are ANDed.
type GetOnePropertyOptions struct {
	ID   string
	Name string
}

type ListPropertiesOptions struct {
	WithCalendarOnly bool
	Limit            int
	Offset           int
}

type UpdatePropertyOptions struct {
	ID         string
	Name       string
	Address    string
	Timezone   string
	CalendarID string
}
