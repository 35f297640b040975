package dbmodels

import (
	"time"

	"portal-backend/models"
)

type RequestGeneral struct {
	BaseModel
	TrackingCode    string `gorm:"type:varchar(36);index"`
	Subject         string `gorm:"type:varchar(255)"`
	Description     string
	Category        string               `gorm:"type:varchar(255)"`
	Status          models.RequestStatus `gorm:"column:status_req;type:varchar(50)"`
	StatusCase      models.StatusCase    `gorm:"column:id_status_case"`
	RequesterID     int64                `gorm:"index"`
	Requester       *PortalUser          `gorm:"foreignKey:RequesterID"`
	CompanyID       int64                `gorm:"index"`
	Company         *Company
	Resolution      string
	ResolvedAt      *time.Time
	FinalExecutorID *int64
	FinalExecutor   *PortalUser          `gorm:"foreignKey:FinalExecutorID"`
	Process         *RequestProcess      `gorm:"foreignKey:RequestID"`
	Tasks           []TaskRequestGeneral `gorm:"foreignKey:RequestID"`
}

// RequestProcess links a request to the workflow it was raised against.
type RequestProcess struct {
	BaseModel
	RequestID int64            `gorm:"index:idx_request_process,unique"`
	ProcessID int64            `gorm:"index"`
	Process   *ProcessCategory `gorm:"foreignKey:ProcessID"`
}

type TaskRequestGeneral struct {
	BaseModel
	TemplateID      int64                `gorm:"index"`
	Template        *TaskProcessCategory `gorm:"foreignKey:TemplateID"`
	RequestID       int64                `gorm:"index"`
	Request         *RequestGeneral      `gorm:"foreignKey:RequestID"`
	Status          models.TaskStatus    `gorm:"column:id_status"`
	AssignedID      *int64
	Assigned        *PortalUser `gorm:"foreignKey:AssignedID"`
	StartDate       *time.Time
	EndDate         *time.Time
	Resolution      string
	ResolvedAt      *time.Time
	FinalExecutorID *int64
	FinalExecutor   *PortalUser `gorm:"foreignKey:FinalExecutorID"`
}
