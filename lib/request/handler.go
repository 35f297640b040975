package requesthandler

import (
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"portal-backend/config"
	"portal-backend/db"
	"portal-backend/lib/access"
	requeststore "portal-backend/lib/request/store"
	taskexecstore "portal-backend/lib/taskexec/store"
	"portal-backend/models"
	requestapimodels "portal-backend/models/api/request"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(data requestapimodels.RequestCreateData, createdByEmail string) (id int64, err error)
	List(filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, err error)
	GetByID(id int64) (view requestapimodels.RequestView, err error)
	Update(id int64, data requestapimodels.RequestEditData, actingEmail string) error
	ExportXLS(filter requestapimodels.RequestFilter) (content []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          requeststore.NewInstance(db.DB),
		accessProvider: access.Instance,
	}
}

type impl struct {
	store          requeststore.Provider
	accessProvider access.Provider
}

// Create registers a request in "Pendiente" and, when the category has an
// active workflow, links the request to it and spawns its task instances.
func (i impl) Create(data requestapimodels.RequestCreateData, createdByEmail string) (id int64, err error) {
	logger := log.
		WithField("company_id", data.CompanyID).
		WithField("email", createdByEmail)
	if err = data.Validate(); err != nil {
		return 0, models.NewValidationError(err.Error())
	}
	rec := dbmodels.RequestGeneral{
		TrackingCode: uuid.NewString(),
		Subject:      strings.TrimSpace(data.Subject),
		Description:  strings.TrimSpace(data.Description),
		Category:     strings.TrimSpace(data.Category),
		Status:       models.RequestStatusPending,
		StatusCase:   models.StatusCaseOpen,
		RequesterID:  data.RequesterID,
		CompanyID:    data.CompanyID,
	}
	process, err := i.store.FindActiveProcessByCategory(rec.Category)
	if err != nil {
		return 0, models.NewPersistenceError("workflow lookup failed", err)
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			return err
		}
		if process == nil {
			return nil
		}
		if err = store.LinkProcess(id, process.ID); err != nil {
			return err
		}
		return spawnTaskInstances(tx, id, process.ID)
	})
	if err != nil {
		logger.WithError(err).Error("request creation failed")
		return 0, models.NewPersistenceError("could not create request", err)
	}
	logger.WithField("rec_id", id).Info("request created")
	return id, nil
}

// spawnTaskInstances copies the workflow's active task templates into pending
// task instances of the new request.
func spawnTaskInstances(tx *gorm.DB, requestID, processID int64) error {
	var templates []dbmodels.TaskProcessCategory
	err := tx.
		Where("process_id = ?", processID).
		Where("active = ?", true).
		Preload("Assignments").
		Find(&templates).
		Error
	if err != nil {
		return err
	}
	taskStore := taskexecstore.NewInstance(tx)
	for _, template := range templates {
		instance := dbmodels.TaskRequestGeneral{
			TemplateID: template.ID,
			RequestID:  requestID,
			Status:     models.TaskStatusPending,
		}
		if len(template.Assignments) > 0 {
			userID := template.Assignments[len(template.Assignments)-1].UserID
			instance.AssignedID = &userID
		}
		if _, err := taskStore.Create(instance); err != nil {
			return err
		}
	}
	return nil
}

func (i impl) List(filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, err error) {
	if err = filter.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	recList, err := i.store.List(filter, defaultCaseFor(filter.Mode))
	if err != nil {
		return nil, models.NewPersistenceError("could not list requests", err)
	}
	result := make([]requestapimodels.RequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requestapimodels.RequestConvert(rec))
	}
	return result, nil
}

// defaultCaseFor reads the per-listing default status-case from config.
func defaultCaseFor(mode requestapimodels.ListMode) models.StatusCase {
	if mode == requestapimodels.ListModeAssigned {
		return models.StatusCase(config.Conf.Requests.AssignedDefaultCase)
	}
	return models.StatusCase(config.Conf.Requests.GeneralDefaultCase)
}

func (i impl) GetByID(id int64) (requestapimodels.RequestView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return requestapimodels.RequestView{}, models.NewPersistenceError("could not load request", err)
	}
	if rec == nil {
		return requestapimodels.RequestView{}, models.NewNotFoundError("request not found")
	}
	return requestapimodels.RequestConvert(*rec), nil
}

// Update overwrites the request's fields. Allowed for privileged roles and
// for the user assigned to the linked workflow, compared by user id.
func (i impl) Update(id int64, data requestapimodels.RequestEditData, actingEmail string) error {
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
		return models.NewPersistenceError("could not load request", err)
	}
	if rec == nil {
		return models.NewNotFoundError("request not found")
	}
	if !profile.IsAdmin() {
		if rec.Process == nil || !profile.IsAssignedTo(rec.Process.ProcessID) {
			return models.NewForbiddenError("only the assigned user may update this request")
		}
	}
	updMap := map[string]interface{}{
		"status_req": data.Status,
	}
	if data.RequesterID > 0 {
		updMap["requester_id"] = data.RequesterID
	}
	if data.CompanyID > 0 {
		updMap["company_id"] = data.CompanyID
	}
	if strings.TrimSpace(data.Category) != "" {
		updMap["category"] = strings.TrimSpace(data.Category)
	}
	if strings.TrimSpace(data.Description) != "" {
		updMap["description"] = data.Description
	}
	if strings.TrimSpace(data.Resolution) != "" {
		updMap["resolution"] = data.Resolution
		updMap["resolved_at"] = gorm.Expr("COALESCE(resolved_at, NOW())")
		updMap["final_executor_id"] = profile.UserID
	}
	if err = i.store.Update(id, updMap); err != nil {
		logger.WithError(err).Error("request update failed")
		return models.NewPersistenceError("could not update request", err)
	}
	logger.Info("request updated")
	return nil
}
