package requesthandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"portal-backend/config"
	"portal-backend/lib/access"
	"portal-backend/models"
	requestapimodels "portal-backend/models/api/request"
	dbmodels "portal-backend/models/db"
)

type mockRequestStore struct {
	rec       *dbmodels.RequestGeneral
	list      []dbmodels.RequestGeneral
	gotCase   models.StatusCase
	gotFilter requestapimodels.RequestFilter
	updMap    map[string]interface{}
}

func (m *mockRequestStore) Create(rec dbmodels.RequestGeneral) (int64, error) { return 0, nil }
func (m *mockRequestStore) GetByID(id int64) (*dbmodels.RequestGeneral, error) {
	return m.rec, nil
}
func (m *mockRequestStore) Update(id int64, updMap map[string]interface{}) error {
	m.updMap = updMap
	return nil
}
func (m *mockRequestStore) List(filter requestapimodels.RequestFilter, defaultCase models.StatusCase) ([]dbmodels.RequestGeneral, error) {
	m.gotFilter = filter
	m.gotCase = defaultCase
	return m.list, nil
}
func (m *mockRequestStore) LinkProcess(requestID, processID int64) error { return nil }
func (m *mockRequestStore) FindActiveProcessByCategory(categoryName string) (*dbmodels.ProcessCategory, error) {
	return nil, nil
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

func testConfig() {
	conf := new(config.Configuration)
	conf.Requests.GeneralDefaultCase = 1
	conf.Requests.AssignedDefaultCase = 4
	config.Conf = conf
}

func TestRequestList(t *testing.T) {
	testConfig()

	t.Run(`general listing falls back to the open case`, func(t *testing.T) {
		store := &mockRequestStore{}
		handler := impl{store: store}

		_, err := handler.List(requestapimodels.RequestFilter{
			RequesterID: 7,
			Mode:        requestapimodels.ListModeGeneral,
		})
		require.Nil(t, err)
		require.Equal(t, models.StatusCaseOpen, store.gotCase)
	})

	t.Run(`assigned listing falls back to the in-progress case`, func(t *testing.T) {
		store := &mockRequestStore{}
		handler := impl{store: store}

		_, err := handler.List(requestapimodels.RequestFilter{
			AssignedToID: 3,
			Mode:         requestapimodels.ListModeAssigned,
		})
		require.Nil(t, err)
		require.Equal(t, models.StatusCaseInProgress, store.gotCase)
	})

	t.Run(`pagination fields reach the store`, func(t *testing.T) {
		store := &mockRequestStore{}
		handler := impl{store: store}

		filter := requestapimodels.RequestFilter{
			RequesterID: 7,
			Mode:        requestapimodels.ListModeGeneral,
		}
		filter.Page = 2
		filter.Limit = 25
		_, err := handler.List(filter)
		require.Nil(t, err)
		require.Equal(t, 2, store.gotFilter.Page)
		require.Equal(t, 25, store.gotFilter.Limit)
	})

	t.Run(`general listing requires a requester`, func(t *testing.T) {
		handler := impl{store: &mockRequestStore{}}

		_, err := handler.List(requestapimodels.RequestFilter{
			Mode: requestapimodels.ListModeGeneral,
		})
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindValidation, appErr.Kind)
	})
}

func TestRequestUpdate(t *testing.T) {
	testConfig()

	linkedRec := func() *dbmodels.RequestGeneral {
		rec := &dbmodels.RequestGeneral{
			Status:     models.RequestStatusPending,
			StatusCase: models.StatusCaseOpen,
			Process:    &dbmodels.RequestProcess{ProcessID: 20},
		}
		rec.ID = 11
		return rec
	}

	t.Run(`assigned user may update, compared by id`, func(t *testing.T) {
		store := &mockRequestStore{rec: linkedRec()}
		handler := impl{
			store: store,
			accessProvider: mockAccessProvider{profile: access.Profile{
				UserID:            4,
				Role:              models.PlainUserRole,
				AssignedProcesses: []int64{20},
			}},
		}

		err := handler.Update(11, requestapimodels.RequestEditData{Status: "En proceso"}, "asignado@portal.local")
		require.Nil(t, err)
		require.Equal(t, "En proceso", store.updMap["status_req"])
	})

	t.Run(`unassigned plain user is rejected`, func(t *testing.T) {
		store := &mockRequestStore{rec: linkedRec()}
		handler := impl{
			store: store,
			accessProvider: mockAccessProvider{profile: access.Profile{
				UserID:            5,
				Role:              models.PlainUserRole,
				AssignedProcesses: []int64{99},
			}},
		}

		err := handler.Update(11, requestapimodels.RequestEditData{Status: "En proceso"}, "otro@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindForbidden, appErr.Kind)
		require.Nil(t, store.updMap)
	})

	t.Run(`plain user on an unlinked request is rejected`, func(t *testing.T) {
		rec := linkedRec()
		rec.Process = nil
		store := &mockRequestStore{rec: rec}
		handler := impl{
			store:          store,
			accessProvider: mockAccessProvider{profile: access.Profile{UserID: 5, Role: models.PlainUserRole}},
		}

		err := handler.Update(11, requestapimodels.RequestEditData{Status: "En proceso"}, "otro@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindForbidden, appErr.Kind)
	})

	t.Run(`admin may update any request`, func(t *testing.T) {
		store := &mockRequestStore{rec: linkedRec()}
		handler := impl{
			store:          store,
			accessProvider: mockAccessProvider{profile: access.Profile{UserID: 1, Role: models.AdminRole}},
		}

		err := handler.Update(11, requestapimodels.RequestEditData{Status: "Resuelta", Resolution: "Listo"}, "admin@portal.local")
		require.Nil(t, err)
		require.Equal(t, "Listo", store.updMap["resolution"])
		require.Equal(t, int64(1), store.updMap["final_executor_id"])
	})

	t.Run(`missing request is not found`, func(t *testing.T) {
		handler := impl{
			store:          &mockRequestStore{rec: nil},
			accessProvider: mockAccessProvider{profile: access.Profile{Role: models.AdminRole}},
		}

		err := handler.Update(404, requestapimodels.RequestEditData{Status: "En proceso"}, "admin@portal.local")
		appErr, ok := models.AsAppError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.KindNotFound, appErr.Kind)
	})
}
