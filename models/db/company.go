package dbmodels

type Company struct {
	BaseModel
	Name  string        `gorm:"type:varchar(255)"`
	Users []CompanyUser `gorm:"foreignKey:CompanyID"`
}

type CompanyUser struct {
	BaseModel
	CompanyID int64 `gorm:"index:idx_company_user,unique"`
	Company   *Company
	UserID    int64                   `gorm:"index:idx_company_user,unique"`
	User      *PortalUser             `gorm:"foreignKey:UserID"`
	Grants    []SubprocessUserCompany `gorm:"foreignKey:CompanyUserID"`
}

// SubprocessUserCompany grants a company member access to an admin-only
// URL path. Checked by the access middleware on matching routes.
type SubprocessUserCompany struct {
	BaseModel
	CompanyUserID int64 `gorm:"index"`
	CompanyUser   *CompanyUser
	Subprocess    string `gorm:"type:varchar(255)"`
	Allowed       bool   `gorm:"default:true"`
}
