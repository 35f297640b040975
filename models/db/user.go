package dbmodels

import (
	"portal-backend/models"
)

type PortalUser struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(128)"`
	Salt         string          `gorm:"type:varchar(64)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
	Active       bool            `gorm:"default:true"`
	Companies    []CompanyUser   `gorm:"foreignKey:UserID"`
}
