package taskexechandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"portal-backend/lib/access"
	"portal-backend/models"
	taskapimodels "portal-backend/models/api/task"
	dbmodels "portal-backend/models/db"
)

type mockTaskStore struct {
	rec    *dbmodels.TaskRequestGeneral
	list   []dbmodels.TaskRequestGeneral
	updMap map[string]interface{}
}

func (m *mockTaskStore) Create(rec dbmodels.TaskRequestGeneral) (int64, error) { return 0, nil }
func (m *mockTaskStore) GetByID(id int64) (*dbmodels.TaskRequestGeneral, error) {
	return m.rec, nil
}
func (m *mockTaskStore) ListByRequest(requestID int64) ([]dbmodels.TaskRequestGeneral, error) {
	return m.list, nil
}
func (m *mockTaskStore) Update(id int64, updMap map[string]interface{}) error {
	m.updMap = updMap
	return nil
}

type mockAccessProvider struct {
	profile access.Profile
}

func (m mockAccessProvider) Resolve(email string) (access.Profile, error) {
	return m.profile, nil
}

func (m mockAccessProvider) HasSubprocessGrant(userID int64, path string) (bool, error) {
	return false, nil
}

func TestTaskUpdate(t *testing.T) {
	executor := mockAccessProvider{profile: access.Profile{UserID: 6, Role: models.PlainUserRole}}

	t.Run(`resolution stamps the timestamp once`, func(t *testing.T) {
		store := &mockTaskStore{rec: &dbmodels.TaskRequestGeneral{Status: models.TaskStatusPending}}
		handler := impl{store: store, accessProvider: executor}

		err := handler.Update(3, taskapimodels.TaskInstanceEditData{
			Status:         int(models.TaskStatusDone),
			AssignedUserID: 6,
			Resolution:     "Equipo entregado",
		}, "ejecutor@portal.local")
		require.Nil(t, err)
		require.Equal(t, "Equipo entregado", store.updMap["resolution"])
		require.Equal(t, int64(6), store.updMap["final_executor_id"])
		require.NotNil(t, store.updMap["resolved_at"])
	})

	t.Run(`already resolved task keeps its timestamp`, func(t *testing.T) {
		resolvedAt := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
		store := &mockTaskStore{rec: &dbmodels.TaskRequestGeneral{
			Status:     models.TaskStatusDone,
			Resolution: "Equipo entregado",
			ResolvedAt: &resolvedAt,
		}}
		handler := impl{store: store, accessProvider: executor}

		err := handler.Update(3, taskapimodels.TaskInstanceEditData{
			Status:         int(models.TaskStatusDone),
			AssignedUserID: 6,
			Resolution:     "Equipo entregado y registrado",
		}, "ejecutor@portal.local")
		require.Nil(t, err)
		_, exists := store.updMap["resolved_at"]
		require.Equal(t, false, exists)
		require.Equal(t, "Equipo entregado y registrado", store.updMap["resolution"])
	})

	t.Run(`blank resolution leaves resolution fields alone`, func(t *testing.T) {
		store := &mockTaskStore{rec: &dbmodels.TaskRequestGeneral{Status: models.TaskStatusPending}}
		handler := impl{store: store, accessProvider: executor}

		err := handler.Update(3, taskapimodels.TaskInstanceEditData{
			Status:         int(models.TaskStatusInProgress),
			AssignedUserID: 6,
			Resolution:     "   ",
		}, "ejecutor@portal.local")
		require.Nil(t, err)
		_, exists := store.updMap["resolution"]
		require.Equal(t, false, exists)
		_, exists = store.updMap["resolved_at"]
		require.Equal(t, false, exists)
	})

	t.Run(`assignee is required`, func(t *testing.T) {
		handler := impl{store: &mockTaskStore{}, accessProvider: executor}

		err := handler.Update(3, taskapimodels.TaskInstanceEditData{
			Status: int(models.TaskStatusInProgress),
		}, "ejecutor@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindValidation, appErr.Kind)
	})

	t.Run(`missing task is not found`, func(t *testing.T) {
		handler := impl{store: &mockTaskStore{rec: nil}, accessProvider: executor}

		err := handler.Update(404, taskapimodels.TaskInstanceEditData{
			Status:         int(models.TaskStatusInProgress),
			AssignedUserID: 6,
		}, "ejecutor@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindNotFound, appErr.Kind)
	})
}
