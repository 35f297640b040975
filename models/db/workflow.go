package dbmodels

import (
	"portal-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProcessCategory struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Active      bool
	Status      models.WorkflowStatus `gorm:"column:id_status"`
	CostCenter  string                `gorm:"type:varchar(100)"`
	CategoryID  int64                 `gorm:"index"`
	Category    *CategoryRequest      `gorm:"foreignKey:CategoryID"`
	Assignments []ProcessAssignment   `gorm:"foreignKey:ProcessID"`
	Tasks       []TaskProcessCategory `gorm:"foreignKey:ProcessID"`
}

// ProcessAssignment links a workflow to its responsible user. Reassignment
// replaces the link rather than updating it in place.
type ProcessAssignment struct {
	BaseModel
	ProcessID int64            `gorm:"index"`
	Process   *ProcessCategory `gorm:"foreignKey:ProcessID"`
	UserID    int64
	User      *PortalUser `gorm:"foreignKey:UserID"`
}

type TaskProcessCategory struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Active      bool
	Cost        float64
	CostCenter  string           `gorm:"type:varchar(100)"`
	ProcessID   int64            `gorm:"index"`
	Process     *ProcessCategory `gorm:"foreignKey:ProcessID"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID"`
}

type TaskAssignment struct {
	BaseModel
	TaskID int64                `gorm:"index"`
	Task   *TaskProcessCategory `gorm:"foreignKey:TaskID"`
	UserID int64
	User   *PortalUser `gorm:"foreignKey:UserID"`
}

// Assignment links must go before the template row.
func (t *TaskProcessCategory) BeforeDelete(tx *gorm.DB) (err error) {
	if t.ID == 0 {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("task_id = ?", t.ID).Delete(&TaskAssignment{})
	return
}
