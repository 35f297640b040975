package access

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"portal-backend/models"
	dbmodels "portal-backend/models/db"
)

// Profile is the resolved view of an authenticated principal. It is rebuilt
// on every call: permissions can change between requests, so callers must not
// cache it.
type Profile struct {
	UserID            int64
	Name              string
	Email             string
	Role              models.UserRole
	Companies         []int64
	CategoryLeaderOf  []int64
	AssignedProcesses []int64
}

func (p Profile) IsAdmin() bool {
	return p.Role.IsPrivileged()
}

func (p Profile) IsLeaderOf(categoryID int64) bool {
	for _, id := range p.CategoryLeaderOf {
		if id == categoryID {
			return true
		}
	}
	return false
}

func (p Profile) IsAssignedTo(processID int64) bool {
	for _, id := range p.AssignedProcesses {
		if id == processID {
			return true
		}
	}
	return false
}

type Provider interface {
	Resolve(email string) (Profile, error)
	HasSubprocessGrant(userID int64, path string) (bool, error)
}

var Instance Provider

func NewHandler(db *gorm.DB) {
	Instance = impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Resolve(email string) (Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return Profile{}, models.NewUnauthenticatedError("no authenticated user")
	}
	user := dbmodels.PortalUser{}
	err := i.db.
		Where("email = ?", email).
		Where("active = ?", true).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Profile{}, models.NewUnauthenticatedError("no authenticated user")
		}
		return Profile{}, models.NewPersistenceError("user lookup failed", err)
	}

	profile := Profile{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}

	var companyLinks []dbmodels.CompanyUser
	err = i.db.Where("user_id = ?", user.ID).Find(&companyLinks).Error
	if err != nil {
		return Profile{}, models.NewPersistenceError("company membership lookup failed", err)
	}
	for _, link := range companyLinks {
		profile.Companies = append(profile.Companies, link.CompanyID)
	}

	var leaderLinks []dbmodels.CategoryLeader
	err = i.db.Where("user_id = ?", user.ID).Find(&leaderLinks).Error
	if err != nil {
		return Profile{}, models.NewPersistenceError("category leader lookup failed", err)
	}
	for _, link := range leaderLinks {
		profile.CategoryLeaderOf = append(profile.CategoryLeaderOf, link.CategoryID)
	}

	var assignments []dbmodels.ProcessAssignment
	err = i.db.Where("user_id = ?", user.ID).Find(&assignments).Error
	if err != nil {
		return Profile{}, models.NewPersistenceError("process assignment lookup failed", err)
	}
	for _, link := range assignments {
		profile.AssignedProcesses = append(profile.AssignedProcesses, link.ProcessID)
	}

	return profile, nil
}

func (i impl) HasSubprocessGrant(userID int64, path string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.SubprocessUserCompany{}).
		Joins("JOIN company_users ON company_users.id = subprocess_user_companies.company_user_id").
		Where("company_users.user_id = ?", userID).
		Where("subprocess_user_companies.subprocess = ?", path).
		Where("subprocess_user_companies.allowed = ?", true).
		Count(&count).
		Error
	if err != nil {
		return false, models.NewPersistenceError("subprocess grant lookup failed", err)
	}
	return count > 0, nil
}
