package workflowapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"portal-backend/models"
)

func TestWorkflowCreateDataValidate(t *testing.T) {
	valid := WorkflowCreateData{
		CategoryID:        1,
		CompanyID:         2,
		Name:              "Compra de equipo",
		ResponsibleUserID: 3,
		Tasks:             []TaskData{},
	}

	t.Run(`empty task list is accepted`, func(t *testing.T) {
		require.Nil(t, valid.Validate())
	})

	t.Run(`absent task list is rejected`, func(t *testing.T) {
		data := valid
		data.Tasks = nil
		require.NotNil(t, data.Validate())
	})

	t.Run(`blank name is rejected`, func(t *testing.T) {
		data := valid
		data.Name = "   "
		require.NotNil(t, data.Validate())
	})

	t.Run(`responsible user is required`, func(t *testing.T) {
		data := valid
		data.ResponsibleUserID = 0
		require.NotNil(t, data.Validate())
	})
}

func TestWorkflowEditDataValidate(t *testing.T) {
	valid := WorkflowEditData{
		Name:              "Compra de equipo",
		Status:            models.WorkflowStatusActive,
		ResponsibleUserID: 3,
	}

	t.Run(`every known status is accepted`, func(t *testing.T) {
		for _, status := range []models.WorkflowStatus{
			models.WorkflowStatusActive,
			models.WorkflowStatusArchived,
			models.WorkflowStatusInactive,
			models.WorkflowStatusDraft,
		} {
			data := valid
			data.Status = status
			require.Nil(t, data.Validate())
		}
	})

	t.Run(`unknown status is rejected`, func(t *testing.T) {
		data := valid
		data.Status = models.WorkflowStatus(99)
		require.NotNil(t, data.Validate())
	})

	t.Run(`zero status is rejected`, func(t *testing.T) {
		data := valid
		data.Status = 0
		require.NotNil(t, data.Validate())
	})

	t.Run(`blank name is rejected`, func(t *testing.T) {
		data := valid
		data.Name = ""
		require.NotNil(t, data.Validate())
	})
}

func TestTaskOpValidate(t *testing.T) {
	t.Run(`create without id is fine`, func(t *testing.T) {
		op := TaskOp{Action: TaskOpCreate, Name: "Revisión"}
		require.Nil(t, op.Validate())
	})

	t.Run(`update without id is rejected`, func(t *testing.T) {
		op := TaskOp{Action: TaskOpUpdate, Name: "Revisión"}
		require.NotNil(t, op.Validate())
	})

	t.Run(`delete without id is rejected`, func(t *testing.T) {
		op := TaskOp{Action: TaskOpDelete}
		require.NotNil(t, op.Validate())
	})

	t.Run(`unknown action is rejected`, func(t *testing.T) {
		op := TaskOp{Action: "rename", ID: 1}
		require.NotNil(t, op.Validate())
	})

	t.Run(`empty batch is rejected`, func(t *testing.T) {
		require.NotNil(t, ReconcileTasksData{}.Validate())
	})
}
