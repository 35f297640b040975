package companiesstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Company) (id int64, err error)
	GetByID(id int64) (rec *dbmodels.Company, err error)
	List() (list []dbmodels.Company, err error)
	Update(id int64, updMap map[string]interface{}) error
	AddUser(companyID, userID int64) (companyUserID int64, err error)
	FindCompanyUser(companyID, userID int64) (rec *dbmodels.CompanyUser, err error)
	AddGrant(rec dbmodels.SubprocessUserCompany) error
	LinkCategory(companyID, categoryID int64) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (int64, error) {
	err := i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int64) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Where("id = ?", id).
		Preload("Users").
		Preload("Users.User").
		Preload("Users.Grants").
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

func (i impl) List() (list []dbmodels.Company, err error) {
	list = []dbmodels.Company{}
	err = i.db.
		Order("name asc").
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
		Model(&dbmodels.Company{}).
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

func (i impl) AddUser(companyID, userID int64) (int64, error) {
	rec := dbmodels.CompanyUser{
		CompanyID: companyID,
		UserID:    userID,
	}
	err := i.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) FindCompanyUser(companyID, userID int64) (*dbmodels.CompanyUser, error) {
	rec := dbmodels.CompanyUser{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("user_id = ?", userID).
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

func (i impl) AddGrant(rec dbmodels.SubprocessUserCompany) error {
	return i.db.Omit(clause.Associations).Create(&rec).Error
}

func (i impl) LinkCategory(companyID, categoryID int64) error {
	rec := dbmodels.CategoryCompany{
		CategoryID: categoryID,
		CompanyID:  companyID,
	}
	return i.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rec).
		Error
}
