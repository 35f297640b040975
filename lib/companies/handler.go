package companieshandler

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"portal-backend/db"
	companiesstore "portal-backend/lib/companies/store"
	"portal-backend/models"
	adminapimodels "portal-backend/models/api/admin"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(data adminapimodels.CompanyData) (id int64, err error)
	GetByID(id int64) (view adminapimodels.CompanyView, err error)
	List() (list []adminapimodels.CompanyView, err error)
	Update(id int64, data adminapimodels.CompanyData) error
	AddUser(companyID int64, data adminapimodels.CompanyUserData) error
	AddGrant(companyID int64, data adminapimodels.SubprocessGrantData) error
	LinkCategory(companyID int64, data adminapimodels.CategoryLinkData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: companiesstore.NewInstance(db.DB),
	}
}

type impl struct {
	store companiesstore.Provider
}

func (i impl) Create(data adminapimodels.CompanyData) (id int64, err error) {
	if err = data.Validate(); err != nil {
		return 0, models.NewValidationError(err.Error())
	}
	id, err = i.store.Create(dbmodels.Company{Name: strings.TrimSpace(data.Name)})
	if err != nil {
		return 0, models.NewPersistenceError("could not create company", err)
	}
	log.WithField("rec_id", id).Info("company created")
	return id, nil
}

func (i impl) GetByID(id int64) (adminapimodels.CompanyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return adminapimodels.CompanyView{}, models.NewPersistenceError("could not load company", err)
	}
	if rec == nil {
		return adminapimodels.CompanyView{}, models.NewNotFoundError("company not found")
	}
	return adminapimodels.CompanyConvert(*rec), nil
}

func (i impl) List() ([]adminapimodels.CompanyView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, models.NewPersistenceError("could not list companies", err)
	}
	result := make([]adminapimodels.CompanyView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, adminapimodels.CompanyConvert(rec))
	}
	return result, nil
}

func (i impl) Update(id int64, data adminapimodels.CompanyData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	err := i.store.Update(id, map[string]interface{}{"name": strings.TrimSpace(data.Name)})
	if err != nil {
		return models.NewPersistenceError("could not update company", err)
	}
	return nil
}

func (i impl) AddUser(companyID int64, data adminapimodels.CompanyUserData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	_, err := i.store.AddUser(companyID, data.UserID)
	if err != nil {
		return models.NewPersistenceError("could not add company member", err)
	}
	return nil
}

// AddGrant attaches a subprocess access grant to the user's membership in
// the company, creating the membership when missing.
func (i impl) AddGrant(companyID int64, data adminapimodels.SubprocessGrantData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	link, err := i.store.FindCompanyUser(companyID, data.UserID)
	if err != nil {
		return models.NewPersistenceError("membership lookup failed", err)
	}
	if link == nil {
		linkID, err := i.store.AddUser(companyID, data.UserID)
		if err != nil {
			return models.NewPersistenceError("could not add company member", err)
		}
		link = &dbmodels.CompanyUser{BaseModel: dbmodels.BaseModel{ID: linkID}}
	}
	allowed := true
	if data.Allowed != nil {
		allowed = *data.Allowed
	}
	rec := dbmodels.SubprocessUserCompany{
		CompanyUserID: link.ID,
		Subprocess:    strings.TrimSpace(data.Subprocess),
		Allowed:       allowed,
	}
	if err = i.store.AddGrant(rec); err != nil {
		return models.NewPersistenceError("could not add grant", err)
	}
	return nil
}

func (i impl) LinkCategory(companyID int64, data adminapimodels.CategoryLinkData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := i.store.LinkCategory(companyID, data.CategoryID); err != nil {
		return models.NewPersistenceError("could not link category", err)
	}
	return nil
}
