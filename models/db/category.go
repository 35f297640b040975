package dbmodels

type CategoryRequest struct {
	BaseModel
	Name      string            `gorm:"type:varchar(255)"`
	Companies []CategoryCompany `gorm:"foreignKey:CategoryID"`
	Leaders   []CategoryLeader  `gorm:"foreignKey:CategoryID"`
}

type CategoryCompany struct {
	BaseModel
	CategoryID int64            `gorm:"index:idx_category_company,unique"`
	Category   *CategoryRequest `gorm:"foreignKey:CategoryID"`
	CompanyID  int64            `gorm:"index:idx_category_company,unique"`
	Company    *Company
}

// CategoryLeader marks a user allowed to authorize workflows of the category.
type CategoryLeader struct {
	BaseModel
	CategoryID int64            `gorm:"index:idx_category_leader,unique"`
	Category   *CategoryRequest `gorm:"foreignKey:CategoryID"`
	UserID     int64            `gorm:"index:idx_category_leader,unique"`
	User       *PortalUser      `gorm:"foreignKey:UserID"`
}
