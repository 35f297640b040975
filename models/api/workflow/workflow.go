package workflowapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"portal-backend/models"
	dbmodels "portal-backend/models/db"
)

type TaskData struct {
	Name           string  `json:"task"` // template name, blank entries are skipped
	Cost           float64 `json:"cost"`
	CostCenter     string  `json:"cost_center"`
	AssignedUserID int64   `json:"id_user_assigned"` // optional pre-assignment
}

type WorkflowCreateData struct {
	CategoryID        int64      `json:"id_category"`
	CompanyID         int64      `json:"id_company"`
	Name              string     `json:"process"`
	Description       string     `json:"description"`
	CostCenter        string     `json:"cost_center"`
	ResponsibleUserID int64      `json:"id_user"`
	Tasks             []TaskData `json:"task"`
}

func (d WorkflowCreateData) Validate() error {
	if d.CategoryID <= 0 {
		return errors.New("category is required")
	}
	if d.CompanyID <= 0 {
		return errors.New("company is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("process name is required")
	}
	if d.ResponsibleUserID <= 0 {
		return errors.New("responsible user is required")
	}
	if d.Tasks == nil {
		return errors.New("task list is required")
	}
	return nil
}

type WorkflowEditData struct {
	Name              string                `json:"process"`
	Description       string                `json:"description"`
	Active            bool                  `json:"active"`
	Status            models.WorkflowStatus `json:"id_status"`
	CostCenter        string                `json:"cost_center"`
	ResponsibleUserID int64                 `json:"id_user_assigned"`
}

func (d WorkflowEditData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("process name is required")
	}
	if !d.Status.IsValid() {
		return errors.New("unknown workflow status")
	}
	if d.ResponsibleUserID <= 0 {
		return errors.New("responsible user is required")
	}
	return nil
}

type TaskOpAction string

const (
	TaskOpCreate TaskOpAction = "create"
	TaskOpUpdate TaskOpAction = "update"
	TaskOpDelete TaskOpAction = "delete"
)

type TaskOp struct {
	Action         TaskOpAction `json:"action"`
	ID             int64        `json:"id"` // required for update/delete
	Name           string       `json:"task"`
	Active         bool         `json:"active"`
	Cost           float64      `json:"cost"`
	CostCenter     string       `json:"cost_center"`
	AssignedUserID int64        `json:"id_user_assigned"`
}

func (op TaskOp) Validate() error {
	switch op.Action {
	case TaskOpCreate:
	case TaskOpUpdate, TaskOpDelete:
		if op.ID <= 0 {
			return errors.Errorf("task id is required for %s", op.Action)
		}
	default:
		return errors.Errorf("unknown task action: %s", op.Action)
	}
	return nil
}

type ReconcileTasksData struct {
	Tasks []TaskOp `json:"tasks"`
}

func (d ReconcileTasksData) Validate() error {
	if len(d.Tasks) == 0 {
		return errors.New("task operation list is empty")
	}
	for _, op := range d.Tasks {
		if err := op.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type TaskOpResult struct {
	Action  TaskOpAction `json:"action"`
	ID      int64        `json:"id"`
	Name    string       `json:"task,omitempty"`
	Outcome string       `json:"outcome"` // applied | skipped
}

type TaskView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"task"`
	Active       bool    `json:"active"`
	Cost         float64 `json:"cost"`
	CostCenter   string  `json:"cost_center"`
	AssignedID   int64   `json:"id_user_assigned,omitempty"`
	AssignedName string  `json:"user_assigned,omitempty"`
}

type WorkflowView struct {
	ID              int64      `json:"id"`
	Name            string     `json:"process"`
	Description     string     `json:"description"`
	Active          bool       `json:"active"`
	Status          int        `json:"id_status"`
	StatusName      string     `json:"status"`
	CostCenter      string     `json:"cost_center"`
	CategoryID      int64      `json:"id_category"`
	CategoryName    string     `json:"category,omitempty"`
	ResponsibleID   int64      `json:"id_user,omitempty"`
	ResponsibleName string     `json:"user,omitempty"`
	Tasks           []TaskView `json:"task,omitempty"`
}

func WorkflowConvert(rec dbmodels.ProcessCategory) WorkflowView {
	view := WorkflowView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Active:      rec.Active,
		Status:      int(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		CostCenter:  rec.CostCenter,
		CategoryID:  rec.CategoryID,
	}
	if rec.Category != nil {
		view.CategoryName = rec.Category.Name
	}
	if len(rec.Assignments) > 0 {
		assignment := rec.Assignments[len(rec.Assignments)-1]
		view.ResponsibleID = assignment.UserID
		if assignment.User != nil {
			view.ResponsibleName = assignment.User.Name
		}
	}
	for _, task := range rec.Tasks {
		view.Tasks = append(view.Tasks, TaskConvert(task))
	}
	return view
}

func TaskConvert(rec dbmodels.TaskProcessCategory) TaskView {
	view := TaskView{
		ID:         rec.ID,
		Name:       rec.Name,
		Active:     rec.Active,
		Cost:       rec.Cost,
		CostCenter: rec.CostCenter,
	}
	if len(rec.Assignments) > 0 {
		assignment := rec.Assignments[len(rec.Assignments)-1]
		view.AssignedID = assignment.UserID
		if assignment.User != nil {
			view.AssignedName = assignment.User.Name
		}
	}
	return view
}
