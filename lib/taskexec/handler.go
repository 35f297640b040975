package taskexechandler

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"portal-backend/db"
	"portal-backend/lib/access"
	taskexecstore "portal-backend/lib/taskexec/store"
	"portal-backend/models"
	taskapimodels "portal-backend/models/api/task"
)

type Provider interface {
	ListByRequest(requestID int64) (list []taskapimodels.TaskInstanceView, err error)
	Update(id int64, data taskapimodels.TaskInstanceEditData, actingEmail string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          taskexecstore.NewInstance(db.DB),
		accessProvider: access.Instance,
	}
}

type impl struct {
	store          taskexecstore.Provider
	accessProvider access.Provider
}

func (i impl) ListByRequest(requestID int64) ([]taskapimodels.TaskInstanceView, error) {
	recList, err := i.store.ListByRequest(requestID)
	if err != nil {
		return nil, models.NewPersistenceError("could not list request tasks", err)
	}
	result := make([]taskapimodels.TaskInstanceView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, taskapimodels.TaskInstanceConvert(rec))
	}
	return result, nil
}

// Update writes status/assignment/dates/resolution in one statement. The
// resolution timestamp is derived: it is set exactly once, when the
// resolution text first becomes non-blank, and never advanced after that.
func (i impl) Update(id int64, data taskapimodels.TaskInstanceEditData, actingEmail string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("email", actingEmail)
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	profile, err := i.accessProvider.Resolve(actingEmail)
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return models.NewPersistenceError("could not load task", err)
	}
	if rec == nil {
		return models.NewNotFoundError("task not found")
	}
	updMap := map[string]interface{}{
		"id_status":   models.TaskStatus(data.Status),
		"assigned_id": data.AssignedUserID,
	}
	if data.StartDate != nil {
		updMap["start_date"] = data.StartDate
	}
	if data.EndDate != nil {
		updMap["end_date"] = data.EndDate
	}
	if strings.TrimSpace(data.Resolution) != "" {
		updMap["resolution"] = data.Resolution
		if rec.ResolvedAt == nil {
			updMap["resolved_at"] = time.Now()
		}
		updMap["final_executor_id"] = profile.UserID
	}
	if err = i.store.Update(id, updMap); err != nil {
		logger.WithError(err).Error("task update failed")
		return models.NewPersistenceError("could not update task", err)
	}
	logger.Info("task updated")
	return nil
}
