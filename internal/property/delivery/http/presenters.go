package http

import (
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/property"
)

// --- Request DTOs ---

type createReq struct {
	Name       string `json:"name"        binding:"required,max=255"`
	Address    string `json:"address"     binding:"max=1000"`
	Timezone   string `json:"timezone"    binding:"max=64"`
	CalendarID string `json:"calendar_id" binding:"max=255"`
}

func (r createReq) toInput() property.CreateInput {
	return property.CreateInput{
		Name:       r.Name,
		Address:    r.Address,
		Timezone:   r.Timezone,
		CalendarID: r.CalendarID,
	}
}

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() property.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return property.ListInput{Limit: limit, Offset: offset}
}

type updateReq struct {
	ID         string  `json:"-"`
	Name       string  `json:"name"        binding:"max=255"`
	Address    string  `json:"address"     binding:"max=1000"`
	Timezone   string  `json:"timezone"    binding:"max=64"`
	CalendarID *string `json:"calendar_id" binding:"omitempty,max=255"`
}

func (r updateReq) toInput() property.UpdateInput {
	return property.UpdateInput{
		ID:         r.ID,
		Name:       r.Name,
		Address:    r.Address,
		Timezone:   r.Timezone,
		CalendarID: r.CalendarID,
	}
}

// --- Response DTOs ---

type propertyResp struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Timezone   string    `json:"timezone"`
	CalendarID string    `json:"calendar_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newPropertyResp(p model.Property) propertyResp {
	return propertyResp{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		Timezone:   p.Timezone,
		CalendarID: p.CalendarID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type detailResp struct {
	Property propertyResp `json:"property"`
}

type listResp struct {
	Properties []propertyResp `json:"properties"`
	Total      int            `json:"total"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

func (h *handler) newListResp(out property.ListOutput) listResp {
	props := make([]propertyResp, len(out.Properties))
	for i, p := range out.Properties {
		props[i] = newPropertyResp(p)
	}
	return listResp{
		Properties: props,
		Total:      out.Total,
		Limit:      out.Limit,
		Offset:     out.Offset,
	}
}
