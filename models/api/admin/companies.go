package adminapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "portal-backend/models/db"
)

type CompanyData struct {
	Name string `json:"name"`
}

func (d CompanyData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("company name is required")
	}
	return nil
}

type CompanyUserData struct {
	UserID int64 `json:"id_user"`
}

func (d CompanyUserData) Validate() error {
	if d.UserID <= 0 {
		return errors.New("user is required")
	}
	return nil
}

type SubprocessGrantData struct {
	UserID     int64  `json:"id_user"`
	Subprocess string `json:"subprocess"`
	Allowed    *bool  `json:"allowed"`
}

func (d SubprocessGrantData) Validate() error {
	if d.UserID <= 0 {
		return errors.New("user is required")
	}
	if strings.TrimSpace(d.Subprocess) == "" {
		return errors.New("subprocess path is required")
	}
	return nil
}

type CategoryLinkData struct {
	CategoryID int64 `json:"id_category"`
}

func (d CategoryLinkData) Validate() error {
	if d.CategoryID <= 0 {
		return errors.New("category is required")
	}
	return nil
}

type CompanyView struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Users []UserView `json:"users,omitempty"`
}

func CompanyConvert(rec dbmodels.Company) CompanyView {
	view := CompanyView{
		ID:   rec.ID,
		Name: rec.Name,
	}
	for _, link := range rec.Users {
		if link.User != nil {
			view.Users = append(view.Users, UserConvert(*link.User))
		}
	}
	return view
}
