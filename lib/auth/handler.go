package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"portal-backend/db"
	usersstore "portal-backend/lib/users/store"
	authhelpers "portal-backend/lib/utils/auth-helpers"
	authutils "portal-backend/lib/utils/auth-utils"
	"portal-backend/models"
	authapimodels "portal-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return authapimodels.JWTResponse{}, models.NewPersistenceError("login failed", err)
	}
	if user == nil || !user.Active {
		logger.Debug("no active user with this email")
		return authapimodels.JWTResponse{}, models.NewUnauthenticatedError("wrong email or password")
	}
	if authhelpers.HashPassword(password, user.Salt) != user.PasswordHash {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, models.NewUnauthenticatedError("wrong email or password")
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		logger.WithError(err).Error("token generation failed")
		return authapimodels.JWTResponse{}, errors.Wrap(err, "token generation failed")
	}
	return authapimodels.JWTResponse{
		AccessToken: token,
		Role:        string(user.Role),
		Name:        user.Name,
	}, nil
}
