package db

import (
	log "github.com/sirupsen/logrus"
	authhelpers "portal-backend/lib/utils/auth-helpers"
	"portal-backend/models"
	dbmodels "portal-backend/models/db"
)

// Preload seeds the initial admin account so a fresh install is usable.
func Preload() {
	var count int64
	err := DB.Model(&dbmodels.PortalUser{}).Count(&count).Error
	if err != nil {
		log.WithError(err).Error("admin preload check failed")
		return
	}
	if count > 0 {
		return
	}
	salt := authhelpers.NewSalt()
	rec := dbmodels.PortalUser{
		Name:         "Administrador",
		Email:        "admin@portal.local",
		Salt:         salt,
		PasswordHash: authhelpers.HashPassword("admin", salt),
		Role:         models.AdminRole,
		Active:       true,
	}
	if err := DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("admin preload failed")
		return
	}
	log.Info("initial admin user created")
}
