package catalogstore

import (
	"gorm.io/gorm"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	ListCategories(companyID int64) (list []dbmodels.CategoryRequest, err error)
	ListCategoryCompanies(companyID int64) (list []dbmodels.CategoryCompany, err error)
	ListProcesses(categoryID int64) (list []dbmodels.ProcessCategory, err error)
	ListTasks(processID int64) (list []dbmodels.TaskProcessCategory, err error)
	ListAssignableUsers() (list []dbmodels.PortalUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListCategories(companyID int64) (list []dbmodels.CategoryRequest, err error) {
	list = []dbmodels.CategoryRequest{}
	tx := i.db.Order("name asc")
	if companyID > 0 {
		tx = tx.
			Joins("JOIN category_companies ON category_companies.category_id = category_requests.id").
			Where("category_companies.company_id = ?", companyID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCategoryCompanies(companyID int64) (list []dbmodels.CategoryCompany, err error) {
	list = []dbmodels.CategoryCompany{}
	tx := i.db.
		Preload("Category").
		Preload("Company")
	if companyID > 0 {
		tx = tx.Where("company_id = ?", companyID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListProcesses(categoryID int64) (list []dbmodels.ProcessCategory, err error) {
	list = []dbmodels.ProcessCategory{}
	err = i.db.
		Where("category_id = ?", categoryID).
		Preload("Assignments").
		Preload("Assignments.User").
		Order("name asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListTasks(processID int64) (list []dbmodels.TaskProcessCategory, err error) {
	list = []dbmodels.TaskProcessCategory{}
	err = i.db.
		Where("process_id = ?", processID).
		Preload("Assignments").
		Preload("Assignments.User").
		Order("name asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListAssignableUsers returns the distinct users already holding a process or
// task assignment, ordered by display name.
func (i impl) ListAssignableUsers() (list []dbmodels.PortalUser, err error) {
	list = []dbmodels.PortalUser{}
	err = i.db.
		Distinct("portal_users.*").
		Joins("LEFT JOIN process_assignments ON process_assignments.user_id = portal_users.id").
		Joins("LEFT JOIN task_assignments ON task_assignments.user_id = portal_users.id").
		Where("process_assignments.id IS NOT NULL OR task_assignments.id IS NOT NULL").
		Order("portal_users.name asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
