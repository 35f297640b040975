package workflowhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"portal-backend/lib/access"
	"portal-backend/models"
	workflowapimodels "portal-backend/models/api/workflow"
	dbmodels "portal-backend/models/db"
)

type mockWorkflowStore struct {
	rec        *dbmodels.ProcessCategory
	getErr     error
	updatedID  int64
	updMap     map[string]interface{}
	nextTaskID int64
	updTaskErr error
	calls      []string
}

func (m *mockWorkflowStore) Create(rec dbmodels.ProcessCategory) (int64, error) { return 0, nil }
func (m *mockWorkflowStore) GetByID(id int64) (*dbmodels.ProcessCategory, error) {
	return m.rec, m.getErr
}
func (m *mockWorkflowStore) Update(id int64, updMap map[string]interface{}) error {
	m.updatedID = id
	m.updMap = updMap
	return nil
}
func (m *mockWorkflowStore) ReplaceAssignment(processID, userID int64) error { return nil }
func (m *mockWorkflowStore) CreateTask(rec dbmodels.TaskProcessCategory) (int64, error) {
	m.calls = append(m.calls, "CreateTask")
	m.nextTaskID++
	return m.nextTaskID, nil
}
func (m *mockWorkflowStore) GetTask(id int64) (*dbmodels.TaskProcessCategory, error) {
	return nil, nil
}
func (m *mockWorkflowStore) UpdateTask(id int64, updMap map[string]interface{}) error {
	m.calls = append(m.calls, "UpdateTask")
	return m.updTaskErr
}
func (m *mockWorkflowStore) DeleteTask(id int64) error {
	m.calls = append(m.calls, "DeleteTask")
	return nil
}
func (m *mockWorkflowStore) DeleteTaskAssignments(taskID int64) error {
	m.calls = append(m.calls, "DeleteTaskAssignments")
	return nil
}
func (m *mockWorkflowStore) CreateTaskAssignment(taskID, userID int64) error {
	m.calls = append(m.calls, "CreateTaskAssignment")
	return nil
}

type mockAccessProvider struct {
	profile access.Profile
	err     error
}

func (m mockAccessProvider) Resolve(email string) (access.Profile, error) {
	return m.profile, m.err
}

func (m mockAccessProvider) HasSubprocessGrant(userID int64, path string) (bool, error) {
	return false, nil
}

func TestWorkflowAuthorize(t *testing.T) {
	draftRec := func() *dbmodels.ProcessCategory {
		return &dbmodels.ProcessCategory{
			Name:       "Compra de equipo",
			Status:     models.WorkflowStatusDraft,
			CategoryID: 10,
		}
	}

	t.Run(`leader activates a draft`, func(t *testing.T) {
		store := &mockWorkflowStore{rec: draftRec()}
		store.rec.ID = 5
		handler := impl{
			store: store,
			accessProvider: mockAccessProvider{profile: access.Profile{
				UserID:           2,
				Role:             models.PlainUserRole,
				CategoryLeaderOf: []int64{10},
			}},
		}

		name, err := handler.Authorize(5, "lider@portal.local")
		require.Nil(t, err)
		require.Equal(t, "Compra de equipo", name)
		require.Equal(t, int64(5), store.updatedID)
		require.Equal(t, models.WorkflowStatusActive, store.updMap["id_status"])
		require.Equal(t, true, store.updMap["active"])
	})

	t.Run(`admin activates without leadership`, func(t *testing.T) {
		store := &mockWorkflowStore{rec: draftRec()}
		handler := impl{
			store: store,
			accessProvider: mockAccessProvider{profile: access.Profile{
				UserID: 1,
				Role:   models.AdminRole,
			}},
		}

		_, err := handler.Authorize(5, "admin@portal.local")
		require.Nil(t, err)
	})

	t.Run(`plain user without leadership is rejected`, func(t *testing.T) {
		store := &mockWorkflowStore{rec: draftRec()}
		handler := impl{
			store: store,
			accessProvider: mockAccessProvider{profile: access.Profile{
				UserID:           3,
				Role:             models.PlainUserRole,
				CategoryLeaderOf: []int64{99},
			}},
		}

		_, err := handler.Authorize(5, "otro@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindForbidden, appErr.Kind)
		require.Nil(t, store.updMap)
	})

	t.Run(`non-draft workflow is rejected`, func(t *testing.T) {
		rec := draftRec()
		rec.Status = models.WorkflowStatusActive
		store := &mockWorkflowStore{rec: rec}
		handler := impl{
			store:          store,
			accessProvider: mockAccessProvider{profile: access.Profile{Role: models.AdminRole}},
		}

		_, err := handler.Authorize(5, "admin@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindValidation, appErr.Kind)
	})

	t.Run(`missing workflow is not found`, func(t *testing.T) {
		store := &mockWorkflowStore{rec: nil}
		handler := impl{
			store:          store,
			accessProvider: mockAccessProvider{profile: access.Profile{Role: models.AdminRole}},
		}

		_, err := handler.Authorize(404, "admin@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindNotFound, appErr.Kind)
	})
}

func TestWorkflowTaskOps(t *testing.T) {
	t.Run(`blank-named create is skipped`, func(t *testing.T) {
		store := &mockWorkflowStore{}
		results, err := applyTaskOps(store, 5, []workflowapimodels.TaskOp{
			{Action: workflowapimodels.TaskOpCreate, Name: "   "},
			{Action: workflowapimodels.TaskOpCreate, Name: "Revisión"},
		})
		require.Nil(t, err)
		require.Equal(t, 2, len(results))
		require.Equal(t, "skipped", results[0].Outcome)
		require.Equal(t, "applied", results[1].Outcome)
		require.Equal(t, []string{"CreateTask"}, store.calls)
	})

	t.Run(`create with assignee links the user`, func(t *testing.T) {
		store := &mockWorkflowStore{}
		results, err := applyTaskOps(store, 5, []workflowapimodels.TaskOp{
			{Action: workflowapimodels.TaskOpCreate, Name: "Entrega", AssignedUserID: 9},
		})
		require.Nil(t, err)
		require.Equal(t, int64(1), results[0].ID)
		require.Equal(t, []string{"CreateTask", "CreateTaskAssignment"}, store.calls)
	})

	t.Run(`update replaces the assignment link unconditionally`, func(t *testing.T) {
		store := &mockWorkflowStore{}
		_, err := applyTaskOps(store, 5, []workflowapimodels.TaskOp{
			{Action: workflowapimodels.TaskOpUpdate, ID: 7, Name: "Entrega", AssignedUserID: 9},
		})
		require.Nil(t, err)
		require.Equal(t, []string{"UpdateTask", "DeleteTaskAssignments", "CreateTaskAssignment"}, store.calls)
	})

	t.Run(`update without assignee only clears the link`, func(t *testing.T) {
		store := &mockWorkflowStore{}
		_, err := applyTaskOps(store, 5, []workflowapimodels.TaskOp{
			{Action: workflowapimodels.TaskOpUpdate, ID: 7, Name: "Entrega"},
		})
		require.Nil(t, err)
		require.Equal(t, []string{"UpdateTask", "DeleteTaskAssignments"}, store.calls)
	})

	t.Run(`delete removes the links before the row`, func(t *testing.T) {
		store := &mockWorkflowStore{}
		_, err := applyTaskOps(store, 5, []workflowapimodels.TaskOp{
			{Action: workflowapimodels.TaskOpDelete, ID: 7},
		})
		require.Nil(t, err)
		require.Equal(t, []string{"DeleteTaskAssignments", "DeleteTask"}, store.calls)
	})

	t.Run(`mid-batch failure names the failing op`, func(t *testing.T) {
		store := &mockWorkflowStore{updTaskErr: errors.New("boom")}
		results, err := applyTaskOps(store, 5, []workflowapimodels.TaskOp{
			{Action: workflowapimodels.TaskOpCreate, Name: "Entrega"},
			{Action: workflowapimodels.TaskOpUpdate, ID: 7, Name: "Revisión"},
			{Action: workflowapimodels.TaskOpDelete, ID: 8},
		})
		require.NotNil(t, err)
		require.Nil(t, results)
		require.Contains(t, err.Error(), "operation 2 of 3")
		require.Contains(t, err.Error(), "1 queued")
	})
}

func TestWorkflowGetByID(t *testing.T) {
	t.Run(`view keeps the last assignment`, func(t *testing.T) {
		rec := &dbmodels.ProcessCategory{
			Name:   "Alta de proveedor",
			Status: models.WorkflowStatusActive,
			Assignments: []dbmodels.ProcessAssignment{
				{UserID: 1, User: &dbmodels.PortalUser{Name: "Ana"}},
				{UserID: 2, User: &dbmodels.PortalUser{Name: "Bruno"}},
			},
		}
		rec.ID = 8
		handler := impl{store: &mockWorkflowStore{rec: rec}}

		view, err := handler.GetByID(8)
		require.Nil(t, err)
		require.Equal(t, "Alta de proveedor", view.Name)
		require.Equal(t, int64(2), view.ResponsibleID)
		require.Equal(t, "Bruno", view.ResponsibleName)
	})

	t.Run(`missing workflow is not found`, func(t *testing.T) {
		handler := impl{store: &mockWorkflowStore{rec: nil}}
		_, err := handler.GetByID(404)
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindNotFound, appErr.Kind)
	})
}
