package taskexecstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TaskRequestGeneral) (id int64, err error)
	GetByID(id int64) (rec *dbmodels.TaskRequestGeneral, err error)
	ListByRequest(requestID int64) (list []dbmodels.TaskRequestGeneral, err error)
	Update(id int64, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TaskRequestGeneral) (int64, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int64) (*dbmodels.TaskRequestGeneral, error) {
	rec := dbmodels.TaskRequestGeneral{}
	err := i.db.
		Where("id = ?", id).
		Preload("Template").
		Preload("Assigned").
		Preload("FinalExecutor").
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

func (i impl) ListByRequest(requestID int64) (list []dbmodels.TaskRequestGeneral, err error) {
	list = []dbmodels.TaskRequestGeneral{}
	err = i.db.
		Where("request_id = ?", requestID).
		Preload("Template").
		Preload("Assigned").
		Preload("FinalExecutor").
		Order("id asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id int64, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.TaskRequestGeneral{}).
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
