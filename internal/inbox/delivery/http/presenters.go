package http

import (
	"time"

	"rental-ops/internal/inbox"
	"rental-ops/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Status     string `form:"status"`
	PropertyID string `form:"property_id"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

// toInput lists pending items unless a status is given.
func (r listReq) toInput() inbox.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	status := r.Status
	if status == "" {
		status = string(model.InboxStatusPending)
	}
	return inbox.ListInput{Status: status, PropertyID: r.PropertyID, Limit: limit, Offset: offset}
}

// --- Response DTOs ---

type itemResp struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	ExternalID string    `json:"external_id"`
	PropertyID string    `json:"property_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	Urgency    string    `json:"urgency"`
	Status     string    `json:"status"`
	TaskID     string    `json:"task_id,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

func newItemResp(it model.InboxItem) itemResp {
	return itemResp{
		ID:         it.ID,
		Source:     it.Source,
		ExternalID: it.ExternalID,
		PropertyID: it.PropertyID,
		Title:      it.Title,
		Body:       it.Body,
		Urgency:    string(it.Urgency),
		Status:     string(it.Status),
		TaskID:     it.TaskID,
		ReceivedAt: it.ReceivedAt,
	}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out inbox.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}

type itemDetailResp struct {
	Item   itemResp `json:"item"`
	TaskID string   `json:"task_id,omitempty"`
}
