package http

import (
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
	"rental-ops/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	PropertyID  string `json:"property_id" binding:"required"`
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=4000"`
	Urgency     string `json:"urgency"     binding:"omitempty,max=16"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		PropertyID:  r.PropertyID,
		Title:       r.Title,
		Description: r.Description,
		Urgency:     r.Urgency,
		Source:      model.TaskSourceManual,
	}
}

type listReq struct {
	PropertyID string `form:"property_id"`
	Status     string `form:"status"`
	Urgency    string `form:"urgency"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		PropertyID: r.PropertyID,
		Status:     r.Status,
		Urgency:    r.Urgency,
		Limit:      limit,
		Offset:     offset,
	}
}

type updateReq struct {
	ID          string `json:"-"`
	Title       string `json:"title"       binding:"max=255"`
	Description string `json:"description" binding:"max=4000"`
	Urgency     string `json:"urgency"     binding:"omitempty,max=16"`
	Status      string `json:"status"      binding:"omitempty,max=16"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Urgency:     r.Urgency,
		Status:      r.Status,
	}
}

type scheduleReq struct {
	At              string `json:"at"               binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"min=0,max=1440"`
}

// previewReq is the ad-hoc suggestion request. Omit calendar to use the stored
// reservations of property_id; omit now for the server clock.
type previewReq struct {
	Urgency    string                      `json:"urgency"     binding:"required"`
	PropertyID string                      `json:"property_id"`
	Calendar   []scheduling.RawReservation `json:"calendar"    binding:"max=1000"`
	Now        string                      `json:"now"`
}

func (r previewReq) toInput() task.PreviewInput {
	return task.PreviewInput{
		Urgency:    r.Urgency,
		PropertyID: r.PropertyID,
		Calendar:   r.Calendar,
		Now:        r.Now,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string     `json:"id"`
	PropertyID   string     `json:"property_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Urgency      string     `json:"urgency"`
	Status       string     `json:"status"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	CalendarLink string     `json:"calendar_link,omitempty"`
	Source       string     `json:"source"`
	CreatedBy    string     `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		PropertyID:   t.PropertyID,
		Title:        t.Title,
		Description:  t.Description,
		Urgency:      string(t.Urgency),
		Status:       string(t.Status),
		ScheduledAt:  t.ScheduledAt,
		CalendarLink: t.CalendarLink,
		Source:       string(t.Source),
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}

// suggestResp carries the instants twice: canonical UTC and in the zone the
// day boundaries were computed in.
type suggestResp struct {
	TaskID      string   `json:"task_id,omitempty"`
	Urgency     string   `json:"urgency"`
	Strategy    string   `json:"strategy"`
	Timezone    string   `json:"timezone"`
	Now         string   `json:"now"`
	Suggestions []string `json:"suggestions"`
	Local       []string `json:"suggestions_local"`
}

func (h *handler) newSuggestResp(out task.SuggestOutput) suggestResp {
	loc := out.Now.Location()
	local := make([]string, len(out.Suggestions))
	for i, t := range out.Suggestions {
		local[i] = t.In(loc).Format(time.RFC3339)
	}
	return suggestResp{
		TaskID:      out.TaskID,
		Urgency:     string(out.Urgency),
		Strategy:    out.Strategy,
		Timezone:    loc.String(),
		Now:         out.Now.Format(time.RFC3339),
		Suggestions: scheduling.FormatSuggestions(out.Suggestions),
		Local:       local,
	}
}
