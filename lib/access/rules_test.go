package access

import (
	"testing"

	"github.com/stretchr/testify/require"
	"portal-backend/models"
)

type fakeGrantProvider struct {
	grants map[string]bool
}

func (f fakeGrantProvider) Resolve(email string) (Profile, error) {
	return Profile{}, nil
}

func (f fakeGrantProvider) HasSubprocessGrant(userID int64, path string) (bool, error) {
	return f.grants[path], nil
}

func TestRules(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/admin/users/{id} [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/admin/users/42"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/admin/users"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/admin/companies/{id}/grants [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/admin/companies/7/grants"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/admin/companies/grants"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`parseSwaggerPattern rejects garbage`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/v1/admin/users")
		require.NotNil(t, err)

		_, _, err = parseSwaggerPattern("/api/v1/admin/users [snap]")
		require.NotNil(t, err)
	})

	t.Run(`GetRuleFunc lookup check`, func(t *testing.T) {
		r := &Rules{rules: map[HTTPMethod]*PathRule{}}
		r.RegisterRule("/api/v1/admin/users [post]", PrivilegedRoleSet, nil)
		r.RegisterRule("/api/v1/admin/users/{id} [delete]", PrivilegedRoleSet, nil)

		handler, found := r.GetRuleFunc("POST", "/api/v1/admin/users")
		require.Equal(t, true, found)
		require.Equal(t, true, handler(1, models.AdminRole, "/api/v1/admin/users"))
		require.Equal(t, false, handler(1, models.PlainUserRole, "/api/v1/admin/users"))

		handler, found = r.GetRuleFunc("DELETE", "/api/v1/admin/users/15/")
		require.Equal(t, true, found)
		require.Equal(t, true, handler(1, models.SuperUserRole, "/api/v1/admin/users/15"))

		_, found = r.GetRuleFunc("GET", "/api/v1/admin/users")
		require.Equal(t, false, found)
	})

	t.Run(`grant fallback for plain user check`, func(t *testing.T) {
		Instance = fakeGrantProvider{grants: map[string]bool{
			"/api/v1/admin/companies/3/users": true,
		}}
		defer func() { Instance = nil }()

		handler := allowByRoleOrGrant(PrivilegedRoleSet)
		require.Equal(t, true, handler(9, models.AdminRole, "/api/v1/admin/companies/3/users"))
		require.Equal(t, true, handler(9, models.PlainUserRole, "/api/v1/admin/companies/3/users"))
		require.Equal(t, false, handler(9, models.PlainUserRole, "/api/v1/admin/companies/4/users"))
	})
}
