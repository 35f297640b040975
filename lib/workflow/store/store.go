package workflowstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ProcessCategory) (id int64, err error)
	GetByID(id int64) (rec *dbmodels.ProcessCategory, err error)
	Update(id int64, updMap map[string]interface{}) error
	ReplaceAssignment(processID, userID int64) error
	CreateTask(rec dbmodels.TaskProcessCategory) (id int64, err error)
	GetTask(id int64) (rec *dbmodels.TaskProcessCategory, err error)
	UpdateTask(id int64, updMap map[string]interface{}) error
	DeleteTask(id int64) error
	DeleteTaskAssignments(taskID int64) error
	CreateTaskAssignment(taskID, userID int64) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ProcessCategory) (int64, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int64) (*dbmodels.ProcessCategory, error) {
	rec := dbmodels.ProcessCategory{}
	err := i.db.
		Where("id = ?", id).
		Preload("Category").
		Preload("Category.Leaders").
		Preload("Assignments").
		Preload("Assignments.User").
		Preload("Tasks").
		Preload("Tasks.Assignments").
		Preload("Tasks.Assignments.User").
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
		Model(&dbmodels.ProcessCategory{}).
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

// ReplaceAssignment wipes every responsible-user link of the process and
// inserts the new one. Idempotent: repeated calls leave exactly one link.
func (i impl) ReplaceAssignment(processID, userID int64) error {
	err := i.db.
		Where("process_id = ?", processID).
		Delete(&dbmodels.ProcessAssignment{}).
		Error
	if err != nil {
		return err
	}
	rec := dbmodels.ProcessAssignment{
		ProcessID: processID,
		UserID:    userID,
	}
	return i.db.Omit(clause.Associations).Create(&rec).Error
}

func (i impl) CreateTask(rec dbmodels.TaskProcessCategory) (int64, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetTask(id int64) (*dbmodels.TaskProcessCategory, error) {
	rec := dbmodels.TaskProcessCategory{}
	err := i.db.
		Where("id = ?", id).
		Preload("Assignments").
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

func (i impl) UpdateTask(id int64, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.TaskProcessCategory{}).
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

func (i impl) DeleteTask(id int64) error {
	rec := dbmodels.TaskProcessCategory{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) DeleteTaskAssignments(taskID int64) error {
	return i.db.
		Where("task_id = ?", taskID).
		Delete(&dbmodels.TaskAssignment{}).
		Error
}

func (i impl) CreateTaskAssignment(taskID, userID int64) error {
	rec := dbmodels.TaskAssignment{
		TaskID: taskID,
		UserID: userID,
	}
	return i.db.Omit(clause.Associations).Create(&rec).Error
}
