package requestapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	apimodels "portal-backend/models/api"
	dbmodels "portal-backend/models/db"
)

type RequestCreateData struct {
	CompanyID   int64  `json:"company"`
	RequesterID int64  `json:"usuario"`
	Category    string `json:"category"`
	Subject     string `json:"subject"`
	Description string `json:"descripcion"`
}

func (d RequestCreateData) Validate() error {
	if d.CompanyID <= 0 {
		return errors.New("company is required")
	}
	if d.RequesterID <= 0 {
		return errors.New("requester is required")
	}
	if strings.TrimSpace(d.Category) == "" {
		return errors.New("category is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return errors.New("description is required")
	}
	return nil
}

// ListMode selects which default status-case policy applies when the caller
// sends no status filter.
type ListMode string

const (
	ListModeGeneral  ListMode = "general"
	ListModeAssigned ListMode = "assigned"
)

type RequestFilter struct {
	apimodels.Pagination
	RequesterID  int64      `json:"idUser"`
	Status       string     `json:"status"`
	CompanyID    int64      `json:"company"`
	DateFrom     *time.Time `json:"date_from"`
	DateTo       *time.Time `json:"date_to"`
	AssignedToID int64      `json:"assignedTo"`
	Mode         ListMode   `json:"-"`
}

func (f RequestFilter) Validate() error {
	if f.Mode == ListModeGeneral && f.RequesterID <= 0 {
		return errors.New("requester id is required")
	}
	return nil
}

type RequestEditData struct {
	Status      string `json:"status"`
	RequesterID int64  `json:"usuario"`
	CompanyID   int64  `json:"company"`
	Category    string `json:"category"`
	Description string `json:"descripcion"`
	Resolution  string `json:"resolution"`
}

func (d RequestEditData) Validate() error {
	if strings.TrimSpace(d.Status) == "" {
		return errors.New("status is required")
	}
	return nil
}

type RequestView struct {
	ID            int64      `json:"id"`
	TrackingCode  string     `json:"tracking_code,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	Description   string     `json:"descripcion"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	StatusCase    int        `json:"id_status_case"`
	RequesterID   int64      `json:"id_user"`
	RequesterName string     `json:"usuario,omitempty"`
	CompanyID     int64      `json:"id_company"`
	CompanyName   string     `json:"company,omitempty"`
	ProcessID     int64      `json:"id_process,omitempty"`
	ProcessName   string     `json:"process,omitempty"`
	AssigneeID    int64      `json:"id_assigned,omitempty"`
	AssigneeName  string     `json:"assigned,omitempty"`
	Resolution    string     `json:"resolution,omitempty"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	ExecutorName  string     `json:"executor_final,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func RequestConvert(rec dbmodels.RequestGeneral) RequestView {
	view := RequestView{
		ID:           rec.ID,
		TrackingCode: rec.TrackingCode,
		Subject:      rec.Subject,
		Description:  rec.Description,
		Category:     rec.Category,
		Status:       string(rec.Status),
		StatusCase:   int(rec.StatusCase),
		RequesterID:  rec.RequesterID,
		CompanyID:    rec.CompanyID,
		Resolution:   rec.Resolution,
		ResolvedAt:   rec.ResolvedAt,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Requester != nil {
		view.RequesterName = rec.Requester.Name
	}
	if rec.Company != nil {
		view.CompanyName = rec.Company.Name
	}
	if rec.FinalExecutor != nil {
		view.ExecutorName = rec.FinalExecutor.Name
	}
	if rec.Process != nil && rec.Process.Process != nil {
		process := rec.Process.Process
		view.ProcessID = process.ID
		view.ProcessName = process.Name
		if len(process.Assignments) > 0 {
			assignment := process.Assignments[len(process.Assignments)-1]
			view.AssigneeID = assignment.UserID
			if assignment.User != nil {
				view.AssigneeName = assignment.User.Name
			}
		}
	}
	return view
}
