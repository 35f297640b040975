package usershandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"portal-backend/config"
	"portal-backend/db"
	usersstore "portal-backend/lib/users/store"
	authhelpers "portal-backend/lib/utils/auth-helpers"
	"portal-backend/models"
	adminapimodels "portal-backend/models/api/admin"
	dbmodels "portal-backend/models/db"
)

type Provider interface {
	Create(data adminapimodels.UserCreateData) (id int64, err error)
	GetByID(id int64) (view adminapimodels.UserView, err error)
	List() (list []adminapimodels.UserView, err error)
	Update(id int64, data adminapimodels.UserEditData) error
	Deactivate(id int64) error
	ChangePassword(email, oldPassword, newPassword string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: usersstore.NewInstance(db.DB),
		limiter: newAttemptLimiter(
			config.Conf.Auth.PasswordAttempts,
			time.Second*time.Duration(config.Conf.Auth.PasswordWindowSec),
		),
	}
}

type impl struct {
	store   usersstore.Provider
	limiter *attemptLimiter
}

func (i *impl) Create(data adminapimodels.UserCreateData) (id int64, err error) {
	logger := log.WithField("email", data.Email)
	if err = data.Validate(); err != nil {
		return 0, models.NewValidationError(err.Error())
	}
	salt := authhelpers.NewSalt()
	rec := dbmodels.PortalUser{
		Name:         strings.TrimSpace(data.Name),
		Email:        strings.TrimSpace(strings.ToLower(data.Email)),
		Salt:         salt,
		PasswordHash: authhelpers.HashPassword(data.Password, salt),
		Role:         models.UserRole(data.Role),
		Active:       true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		if errors.Is(err, usersstore.ErrDuplicateEmail) {
			return 0, models.NewValidationError("email already registered")
		}
		logger.WithError(err).Error("user creation failed")
		return 0, models.NewPersistenceError("could not create user", err)
	}
	logger.WithField("rec_id", id).Info("user created")
	return id, nil
}

func (i *impl) GetByID(id int64) (adminapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return adminapimodels.UserView{}, models.NewPersistenceError("could not load user", err)
	}
	if rec == nil {
		return adminapimodels.UserView{}, models.NewNotFoundError("user not found")
	}
	return adminapimodels.UserConvert(*rec), nil
}

func (i *impl) List() ([]adminapimodels.UserView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, models.NewPersistenceError("could not list users", err)
	}
	result := make([]adminapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, adminapimodels.UserConvert(rec))
	}
	return result, nil
}

func (i *impl) Update(id int64, data adminapimodels.UserEditData) error {
	logger := log.WithField("rec_id", id)
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	updMap := map[string]interface{}{}
	if strings.TrimSpace(data.Name) != "" {
		updMap["name"] = strings.TrimSpace(data.Name)
	}
	if data.Role != "" {
		updMap["role"] = data.Role
	}
	if data.Active != nil {
		updMap["active"] = *data.Active
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("user update failed")
		return models.NewPersistenceError("could not update user", err)
	}
	logger.Info("user updated")
	return nil
}

// Deactivate keeps the row for audit; requests keep referencing the user.
func (i *impl) Deactivate(id int64) error {
	err := i.store.Update(id, map[string]interface{}{"active": false})
	if err != nil {
		return models.NewPersistenceError("could not deactivate user", err)
	}
	return nil
}

func (i *impl) ChangePassword(email, oldPassword, newPassword string) error {
	logger := log.WithField("email", email)
	if !i.limiter.Allow(email) {
		return models.NewValidationError("too many password change attempts, try again later")
	}
	user, err := i.store.FindByEmail(email)
	if err != nil {
		return models.NewPersistenceError("user lookup failed", err)
	}
	if user == nil || !user.Active {
		return models.NewUnauthenticatedError("no authenticated user")
	}
	if authhelpers.HashPassword(oldPassword, user.Salt) != user.PasswordHash {
		logger.Debug("password check failed")
		return models.NewForbiddenError("current password does not match")
	}
	salt := authhelpers.NewSalt()
	updMap := map[string]interface{}{
		"salt":          salt,
		"password_hash": authhelpers.HashPassword(newPassword, salt),
	}
	if err = i.store.Update(user.ID, updMap); err != nil {
		logger.WithError(err).Error("password change failed")
		return models.NewPersistenceError("could not change password", err)
	}
	i.limiter.Reset(email)
	logger.Info("password changed")
	return nil
}
