package adminapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"portal-backend/models"
	dbmodels "portal-backend/models/db"
)

type UserCreateData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (d UserCreateData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(d.Email) == "" {
		return errors.New("email is required")
	}
	if len(d.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	switch models.UserRole(d.Role) {
	case models.AdminRole, models.SuperUserRole, models.PlainUserRole:
	default:
		return errors.Errorf("unknown role: %s", d.Role)
	}
	return nil
}

type UserEditData struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active *bool  `json:"active"`
}

func (d UserEditData) Validate() error {
	if d.Role != "" {
		switch models.UserRole(d.Role) {
		case models.AdminRole, models.SuperUserRole, models.PlainUserRole:
		default:
			return errors.Errorf("unknown role: %s", d.Role)
		}
	}
	return nil
}

type UserView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

func UserConvert(rec dbmodels.PortalUser) UserView {
	return UserView{
		ID:     rec.ID,
		Name:   rec.Name,
		Email:  rec.Email,
		Role:   string(rec.Role),
		Active: rec.Active,
	}
}
