package cataloghandler

import (
	"portal-backend/db"
	catalogstore "portal-backend/lib/catalog/store"
	"portal-backend/models"
	catalogapimodels "portal-backend/models/api/catalog"
	workflowapimodels "portal-backend/models/api/workflow"
)

type Provider interface {
	ListCategories(companyID int64) (list []catalogapimodels.CategoryView, err error)
	ListProcesses(categoryID int64) (list []workflowapimodels.WorkflowView, err error)
	ListTasks(processID int64) (list []workflowapimodels.TaskView, err error)
	ListAssignableUsers() (list []catalogapimodels.AssignableUserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: catalogstore.NewInstance(db.DB),
	}
}

type impl struct {
	store catalogstore.Provider
}

func (i impl) ListCategories(companyID int64) ([]catalogapimodels.CategoryView, error) {
	if companyID > 0 {
		links, err := i.store.ListCategoryCompanies(companyID)
		if err != nil {
			return nil, models.NewPersistenceError("could not list categories", err)
		}
		result := make([]catalogapimodels.CategoryView, 0, len(links))
		for _, link := range links {
			view := catalogapimodels.CategoryView{
				ID:        link.CategoryID,
				CompanyID: link.CompanyID,
			}
			if link.Category != nil {
				view.Category = link.Category.Name
			}
			if link.Company != nil {
				view.CompanyName = link.Company.Name
			}
			result = append(result, view)
		}
		return result, nil
	}
	recList, err := i.store.ListCategories(0)
	if err != nil {
		return nil, models.NewPersistenceError("could not list categories", err)
	}
	result := make([]catalogapimodels.CategoryView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, catalogapimodels.CategoryView{
			ID:       rec.ID,
			Category: rec.Name,
		})
	}
	return result, nil
}

func (i impl) ListProcesses(categoryID int64) ([]workflowapimodels.WorkflowView, error) {
	recList, err := i.store.ListProcesses(categoryID)
	if err != nil {
		return nil, models.NewPersistenceError("could not list workflows", err)
	}
	result := make([]workflowapimodels.WorkflowView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, workflowapimodels.WorkflowConvert(rec))
	}
	return result, nil
}

func (i impl) ListTasks(processID int64) ([]workflowapimodels.TaskView, error) {
	recList, err := i.store.ListTasks(processID)
	if err != nil {
		return nil, models.NewPersistenceError("could not list task templates", err)
	}
	result := make([]workflowapimodels.TaskView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, workflowapimodels.TaskConvert(rec))
	}
	return result, nil
}

func (i impl) ListAssignableUsers() ([]catalogapimodels.AssignableUserView, error) {
	recList, err := i.store.ListAssignableUsers()
	if err != nil {
		return nil, models.NewPersistenceError("could not list assignable users", err)
	}
	result := make([]catalogapimodels.AssignableUserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, catalogapimodels.AssignableUserView{
			ID:    rec.ID,
			Name:  rec.Name,
			Email: rec.Email,
		})
	}
	return result, nil
}
