package workflowhandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"portal-backend/db"
	"portal-backend/lib/access"
	workflowstore "portal-backend/lib/workflow/store"
	"portal-backend/models"
	workflowapimodels "portal-backend/models/api/workflow"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(data workflowapimodels.WorkflowCreateData) (id int64, err error)
	GetByID(id int64) (view workflowapimodels.WorkflowView, err error)
	Authorize(processID int64, actingEmail string) (workflowName string, err error)
	Update(processID int64, data workflowapimodels.WorkflowEditData) error
	ReconcileTasks(processID int64, data workflowapimodels.ReconcileTasksData) (results []workflowapimodels.TaskOpResult, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          workflowstore.NewInstance(db.DB),
		accessProvider: access.Instance,
	}
}

type impl struct {
	store          workflowstore.Provider
	accessProvider access.Provider
}

func (i impl) Create(data workflowapimodels.WorkflowCreateData) (id int64, err error) {
	logger := log.WithField("category_id", data.CategoryID)
	if err = data.Validate(); err != nil {
		return 0, models.NewValidationError(err.Error())
	}
	rec := dbmodels.ProcessCategory{
		Name:        strings.TrimSpace(data.Name),
		Description: data.Description,
		Active:      false,
		Status:      models.WorkflowStatusDraft,
		CostCenter:  data.CostCenter,
		CategoryID:  data.CategoryID,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := workflowstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			return err
		}
		if err = store.ReplaceAssignment(id, data.ResponsibleUserID); err != nil {
			return err
		}
		for _, task := range data.Tasks {
			op := workflowapimodels.TaskOp{
				Action:         workflowapimodels.TaskOpCreate,
				Name:           task.Name,
				Active:         true,
				Cost:           task.Cost,
				CostCenter:     task.CostCenter,
				AssignedUserID: task.AssignedUserID,
			}
			if _, err := applyTaskOp(store, id, op); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("workflow creation failed")
		return 0, models.NewPersistenceError("could not create workflow", err)
	}
	logger.WithField("rec_id", id).Info("workflow created")
	return id, nil
}

func (i impl) GetByID(id int64) (workflowapimodels.WorkflowView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return workflowapimodels.WorkflowView{}, models.NewPersistenceError("could not load workflow", err)
	}
	if rec == nil {
		return workflowapimodels.WorkflowView{}, models.NewNotFoundError("workflow not found")
	}
	return workflowapimodels.WorkflowConvert(*rec), nil
}

// Authorize flips a draft workflow to active. Only the category leader or a
// privileged role may do it, and only from the draft state.
func (i impl) Authorize(processID int64, actingEmail string) (workflowName string, err error) {
	logger := log.
		WithField("rec_id", processID).
		WithField("email", actingEmail)
	profile, err := i.accessProvider.Resolve(actingEmail)
	if err != nil {
		return "", err
	}
	rec, err := i.store.GetByID(processID)
	if err != nil {
		return "", models.NewPersistenceError("could not load workflow", err)
	}
	if rec == nil {
		return "", models.NewNotFoundError("workflow not found")
	}
	if !profile.IsAdmin() && !profile.IsLeaderOf(rec.CategoryID) {
		return "", models.NewForbiddenError("only the category leader may authorize this workflow")
	}
	if !rec.Status.IsAllowChange(models.WorkflowStatusActive) {
		return "", models.NewValidationError("workflow is not in draft state")
	}
	updMap := map[string]interface{}{
		"id_status": models.WorkflowStatusActive,
		"active":    true,
	}
	if err = i.store.Update(processID, updMap); err != nil {
		logger.WithError(err).Error("workflow authorization failed")
		return "", models.NewPersistenceError("could not authorize workflow", err)
	}
	logger.Info("workflow authorized")
	return rec.Name, nil
}

func (i impl) Update(processID int64, data workflowapimodels.WorkflowEditData) error {
	logger := log.WithField("rec_id", processID)
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	rec, err := i.store.GetByID(processID)
	if err != nil {
		return models.NewPersistenceError("could not load workflow", err)
	}
	if rec == nil {
		return models.NewNotFoundError("workflow not found")
	}
	updMap := map[string]interface{}{
		"name":        strings.TrimSpace(data.Name),
		"description": data.Description,
		"active":      data.Active,
		"id_status":   data.Status,
		"cost_center": data.CostCenter,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := workflowstore.NewInstance(tx)
		if err := store.Update(processID, updMap); err != nil {
			return err
		}
		return store.ReplaceAssignment(processID, data.ResponsibleUserID)
	})
	if err != nil {
		logger.WithError(err).Error("workflow update failed")
		return models.NewPersistenceError("could not update workflow", err)
	}
	logger.Info("workflow updated")
	return nil
}

// ReconcileTasks applies a heterogeneous batch of task operations in one
// transaction. A failure on any item rolls back the whole batch.
func (i impl) ReconcileTasks(processID int64, data workflowapimodels.ReconcileTasksData) (results []workflowapimodels.TaskOpResult, err error) {
	logger := log.WithField("rec_id", processID)
	if err = data.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	rec, err := i.store.GetByID(processID)
	if err != nil {
		return nil, models.NewPersistenceError("could not load workflow", err)
	}
	if rec == nil {
		return nil, models.NewNotFoundError("workflow not found")
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		results, err = applyTaskOps(workflowstore.NewInstance(tx), processID, data.Tasks)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("task reconciliation failed")
		return nil, models.NewPersistenceError("could not update workflow tasks", err)
	}
	logger.WithField("ops", len(results)).Info("workflow tasks reconciled")
	return results, nil
}

// applyTaskOps runs the op list in order; the error names the failing op and
// how many were already queued, since the whole batch rolls back.
func applyTaskOps(store workflowstore.Provider, processID int64, ops []workflowapimodels.TaskOp) ([]workflowapimodels.TaskOpResult, error) {
	results := make([]workflowapimodels.TaskOpResult, 0, len(ops))
	for n, op := range ops {
		result, err := applyTaskOp(store, processID, op)
		if err != nil {
			return nil, errors.Wrapf(err, "operation %d of %d (%s) failed, rolling back %d queued", n+1, len(ops), op.Action, len(results))
		}
		results = append(results, result)
	}
	return results, nil
}

func applyTaskOp(store workflowstore.Provider, processID int64, op workflowapimodels.TaskOp) (workflowapimodels.TaskOpResult, error) {
	result := workflowapimodels.TaskOpResult{
		Action:  op.Action,
		ID:      op.ID,
		Name:    op.Name,
		Outcome: "applied",
	}
	switch op.Action {
	case workflowapimodels.TaskOpCreate:
		name := strings.TrimSpace(op.Name)
		if name == "" {
			result.Outcome = "skipped"
			return result, nil
		}
		taskID, err := store.CreateTask(dbmodels.TaskProcessCategory{
			Name:       name,
			Active:     op.Active,
			Cost:       op.Cost,
			CostCenter: op.CostCenter,
			ProcessID:  processID,
		})
		if err != nil {
			return result, err
		}
		result.ID = taskID
		if op.AssignedUserID > 0 {
			if err := store.CreateTaskAssignment(taskID, op.AssignedUserID); err != nil {
				return result, err
			}
		}
	case workflowapimodels.TaskOpUpdate:
		updMap := map[string]interface{}{
			"name":        strings.TrimSpace(op.Name),
			"active":      op.Active,
			"cost":        op.Cost,
			"cost_center": op.CostCenter,
		}
		if err := store.UpdateTask(op.ID, updMap); err != nil {
			return result, err
		}
		// assignment is a full replace, never a merge
		if err := store.DeleteTaskAssignments(op.ID); err != nil {
			return result, err
		}
		if op.AssignedUserID > 0 {
			if err := store.CreateTaskAssignment(op.ID, op.AssignedUserID); err != nil {
				return result, err
			}
		}
	case workflowapimodels.TaskOpDelete:
		if err := store.DeleteTaskAssignments(op.ID); err != nil {
			return result, err
		}
		if err := store.DeleteTask(op.ID); err != nil {
			return result, err
		}
	}
	return result, nil
}
