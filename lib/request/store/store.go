package requeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"portal-backend/models"
	requestapimodels "portal-backend/models/api/request"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RequestGeneral) (id int64, err error)
	GetByID(id int64) (rec *dbmodels.RequestGeneral, err error)
	Update(id int64, updMap map[string]interface{}) error
	List(filter requestapimodels.RequestFilter, defaultCase models.StatusCase) (list []dbmodels.RequestGeneral, err error)
	LinkProcess(requestID, processID int64) error
	FindActiveProcessByCategory(categoryName string) (rec *dbmodels.ProcessCategory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestGeneral) (int64, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int64) (*dbmodels.RequestGeneral, error) {
	rec := dbmodels.RequestGeneral{}
	err := i.db.
		Where("id = ?", id).
		Preload("Requester").
		Preload("Company").
		Preload("FinalExecutor").
		Preload("Process").
		Preload("Process.Process").
		Preload("Process.Process.Assignments").
		Preload("Process.Process.Assignments.User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id int64, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.RequestGeneral{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List applies the filter; when no status is given the configured default
// status-case kicks in, so the unfiltered case is never truly unfiltered.
func (i impl) List(filter requestapimodels.RequestFilter, defaultCase models.StatusCase) (list []dbmodels.RequestGeneral, err error) {
	list = []dbmodels.RequestGeneral{}
	tx := i.db.
		Preload("Requester").
		Preload("Company").
		Preload("FinalExecutor").
		Preload("Process").
		Preload("Process.Process").
		Preload("Process.Process.Assignments").
		Preload("Process.Process.Assignments.User")
	if filter.RequesterID > 0 {
		tx = tx.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.Status != "" {
		tx = tx.Where("status_req = ?", filter.Status)
	} else {
		tx = tx.Where("id_status_case = ?", defaultCase)
	}
	if filter.CompanyID > 0 {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("created_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("created_at <= ?", filter.DateTo)
	}
	if filter.AssignedToID > 0 {
		tx = tx.
			Joins("JOIN request_processes ON request_processes.request_id = request_generals.id").
			Joins("JOIN process_assignments ON process_assignments.process_id = request_processes.process_id").
			Where("process_assignments.user_id = ?", filter.AssignedToID)
	}
	// no pagination fields means the full listing, which export relies on
	if filter.Page > 0 || filter.Limit > 0 {
		page, limit := filter.GetPage()
		tx = tx.Offset((page - 1) * limit).Limit(limit)
	}
	err = tx.Order("request_generals.id desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) LinkProcess(requestID, processID int64) error {
	rec := dbmodels.RequestProcess{
		RequestID: requestID,
		ProcessID: processID,
	}
	return i.db.Omit(clause.Associations).Create(&rec).Error
}

// FindActiveProcessByCategory picks the newest active workflow whose category
// name matches the request's free-text category.
func (i impl) FindActiveProcessByCategory(categoryName string) (*dbmodels.ProcessCategory, error) {
	rec := dbmodels.ProcessCategory{}
	err := i.db.
		Joins("JOIN category_requests ON category_requests.id = process_categories.category_id").
		Where("category_requests.name = ?", categoryName).
		Where("process_categories.id_status = ?", models.WorkflowStatusActive).
		Order("process_categories.id desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
