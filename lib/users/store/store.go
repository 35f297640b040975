package usersstore

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "portal-backend/models/db"
)

// ErrDuplicateEmail reports a unique-constraint hit on the email column.
var ErrDuplicateEmail = errors.New("email already registered")

type Provider interface {
	Create(rec dbmodels.PortalUser) (id int64, err error)
	GetByID(id int64) (rec *dbmodels.PortalUser, err error)
	FindByEmail(email string) (rec *dbmodels.PortalUser, err error)
	Update(id int64, updMap map[string]interface{}) error
	List() (list []dbmodels.PortalUser, err error)
	Delete(id int64) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PortalUser) (int64, error) {
	err := i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return rec.ID, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// the pgx driver reports the sqlstate in the message
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

func (i impl) GetByID(id int64) (*dbmodels.PortalUser, error) {
	rec := dbmodels.PortalUser{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) FindByEmail(email string) (*dbmodels.PortalUser, error) {
	rec := dbmodels.PortalUser{}
	err := i.db.
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
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
		Model(&dbmodels.PortalUser{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateEmail
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (i impl) List() (list []dbmodels.PortalUser, err error) {
	list = []dbmodels.PortalUser{}
	err = i.db.
		Order("name asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id int64) error {
	rec := dbmodels.PortalUser{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}
