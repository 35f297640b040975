package access

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"portal-backend/models"
)

// AccessFunc decides whether the resolved principal may hit the route.
type AccessFunc func(userID int64, role models.UserRole, path string) bool

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
)

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler AccessFunc
}

type PathRule struct {
	Exact    map[string]AccessFunc
	Patterns []PatternRule
}

type Rules struct {
	rules map[HTTPMethod]*PathRule
}

var (
	PrivilegedRoleSet = []models.UserRole{models.AdminRole, models.SuperUserRole}
	AllRoles          = []models.UserRole{models.AdminRole, models.SuperUserRole, models.PlainUserRole}
)

var RuleTable *Rules

func InitRules() {
	r := &Rules{rules: map[HTTPMethod]*PathRule{}}
	RuleTable = r

	// admin area: privileged roles, or a plain user holding a subprocess grant
	// for the exact path
	grantAllow := allowByRoleOrGrant(PrivilegedRoleSet)
	r.RegisterRule("/api/v1/admin/users [get]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/users/{id} [get]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/users [post]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/users/{id} [put]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/users/{id} [delete]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/companies [get]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/companies/{id} [get]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/companies [post]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/companies/{id} [put]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/companies/{id}/users [post]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/companies/{id}/grants [post]", nil, grantAllow)
	r.RegisterRule("/api/v1/admin/companies/{id}/categories [post]", nil, grantAllow)
}

func (r *Rules) GetRuleFunc(method, path string) (AccessFunc, bool) {
	httpMethod := HTTPMethod(strings.ToUpper(method))
	if pathRule, exists := r.rules[httpMethod]; exists {
		if handler, found := findInPathRule(pathRule, normalizePath(path)); found {
			return handler, true
		}
	}
	return nil, false
}

// RegisterRule accepts a swagger-style "path [method]" pattern, matching the
// notation used in route doc comments.
func (r *Rules) RegisterRule(swaggerPattern string, roles []models.UserRole, handler AccessFunc) {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		panic(err.Error())
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	if _, exists := r.rules[method]; !exists {
		r.rules[method] = &PathRule{
			Exact:    make(map[string]AccessFunc),
			Patterns: []PatternRule{},
		}
	}
	pathRule := r.rules[method]
	if isExactPath(path) {
		pathRule.Exact[path] = handler
		return
	}
	pattern := pathToRegex(path)
	if pattern == nil {
		pathRule.Exact[path] = handler
		return
	}
	pathRule.Patterns = append(pathRule.Patterns, PatternRule{
		Pattern: pattern,
		Handler: handler,
	})
}

func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	parts := strings.SplitN(strings.TrimSpace(pattern), " ", 2)
	if len(parts) != 2 {
		return "", "", errors.Errorf("invalid rule pattern: %s", pattern)
	}
	method = HTTPMethod(strings.ToUpper(strings.Trim(parts[1], "[]")))
	switch method {
	case GET, POST, PUT, DELETE:
	default:
		return "", "", errors.Errorf("invalid rule method: %s", pattern)
	}
	return parts[0], method, nil
}

func isExactPath(path string) bool {
	return !strings.Contains(path, "{")
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func pathToRegex(path string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(path)
	pattern = strings.ReplaceAll(pattern, "\\{", "{")
	pattern = strings.ReplaceAll(pattern, "\\}", "}")
	pattern = regexp.MustCompile(`\{[^}]+?\}`).ReplaceAllString(pattern, `([^/]+)`)
	pattern = "^" + pattern + "$"

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return regex
}

func findInPathRule(pathRule *PathRule, path string) (AccessFunc, bool) {
	if pathRule == nil {
		return nil, false
	}
	if handler, exists := pathRule.Exact[path]; exists {
		return handler, true
	}
	for _, patternRule := range pathRule.Patterns {
		if patternRule.Pattern.MatchString(path) {
			return patternRule.Handler, true
		}
	}
	return nil, false
}

func AllowByRoleFunc(accessRoles []models.UserRole) AccessFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(userID int64, role models.UserRole, path string) bool {
		return allowMap[role]
	}
}

func allowByRoleOrGrant(accessRoles []models.UserRole) AccessFunc {
	byRole := AllowByRoleFunc(accessRoles)
	return func(userID int64, role models.UserRole, path string) bool {
		if byRole(userID, role, path) {
			return true
		}
		ok, err := Instance.HasSubprocessGrant(userID, path)
		if err != nil {
			return false
		}
		return ok
	}
}
