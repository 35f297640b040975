package taskapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "portal-backend/models/db"
)

type TaskInstanceEditData struct {
	Status         int        `json:"id_status"`
	AssignedUserID int64      `json:"id_assigned"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Resolution     string     `json:"resolution"`
}

func (d TaskInstanceEditData) Validate() error {
	if d.AssignedUserID <= 0 {
		return errors.New("assigned user is required")
	}
	if d.Status <= 0 {
		return errors.New("status is required")
	}
	return nil
}

type TaskInstanceView struct {
	ID           int64      `json:"id"`
	RequestID    int64      `json:"id_request"`
	TemplateID   int64      `json:"id_task"`
	TemplateName string     `json:"task"`
	Status       int        `json:"id_status"`
	StatusName   string     `json:"status"`
	AssignedID   int64      `json:"id_assigned,omitempty"`
	AssignedName string     `json:"assigned,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Resolution   string     `json:"resolution,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ExecutorName string     `json:"executor_final,omitempty"`
}

func TaskInstanceConvert(rec dbmodels.TaskRequestGeneral) TaskInstanceView {
	view := TaskInstanceView{
		ID:         rec.ID,
		RequestID:  rec.RequestID,
		TemplateID: rec.TemplateID,
		Status:     int(rec.Status),
		StatusName: rec.Status.ToHuman(),
		StartDate:  rec.StartDate,
		EndDate:    rec.EndDate,
		Resolution: rec.Resolution,
		ResolvedAt: rec.ResolvedAt,
	}
	if rec.Template != nil {
		view.TemplateName = rec.Template.Name
	}
	if rec.AssignedID != nil {
		view.AssignedID = *rec.AssignedID
	}
	if rec.Assigned != nil {
		view.AssignedName = rec.Assigned.Name
	}
	if rec.FinalExecutor != nil {
		view.ExecutorName = rec.FinalExecutor.Name
	}
	return view
}
