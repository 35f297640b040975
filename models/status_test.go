package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkflowStatus(t *testing.T) {
	t.Run(`draft may only become active`, func(t *testing.T) {
		require.Equal(t, true, WorkflowStatusDraft.IsAllowChange(WorkflowStatusActive))
		require.Equal(t, false, WorkflowStatusDraft.IsAllowChange(WorkflowStatusArchived))
		require.Equal(t, false, WorkflowStatusDraft.IsAllowChange(WorkflowStatusInactive))
	})

	t.Run(`active is terminal`, func(t *testing.T) {
		require.Equal(t, false, WorkflowStatusActive.IsAllowChange(WorkflowStatusDraft))
		require.Equal(t, false, WorkflowStatusActive.IsAllowChange(WorkflowStatusArchived))
	})

	t.Run(`human names`, func(t *testing.T) {
		require.Equal(t, "En borrador", WorkflowStatusDraft.ToHuman())
		require.Equal(t, "Activo", WorkflowStatusActive.ToHuman())
		require.Equal(t, "Desconocido", WorkflowStatus(42).ToHuman())
	})
}

func TestTaskStatus(t *testing.T) {
	t.Run(`human names`, func(t *testing.T) {
		require.Equal(t, "Pendiente", TaskStatusPending.ToHuman())
		require.Equal(t, "Finalizada", TaskStatusDone.ToHuman())
		require.Equal(t, "Desconocido", TaskStatus(0).ToHuman())
	})
}
