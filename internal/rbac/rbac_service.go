package rbac

import (
	"strings"
	"sync"

	"go-cuti/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	ResourceLeaveHistory = "leave_history"
	ActionReadAll        = "read_all"
)

// Service decides which roles see every employee's leave history. The answer
// only shapes what is displayed; it is not an access control check.
type Service interface {
	HasElevatedAccess(role string) bool
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

// NewServiceForRoles grants leave_history:read_all to roles.
func NewServiceForRoles(roles []string, logger ...*zap.Logger) (Service, error) {
	normalized := make([]string, 0, len(roles))
	for _, r := range roles {
		if r = normalizeRole(r); r != "" {
			normalized = append(normalized, r)
		}
	}

	enforcer, err := infra.NewEnforcer(ResourceLeaveHistory, ActionReadAll, normalized)
	if err != nil {
		return nil, err
	}
	return NewService(enforcer, logger...), nil
}

// normalizeRole matches roles the same way on both sides of the policy.
func normalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

func (s *service) HasElevatedAccess(role string) bool {
	role = normalizeRole(role)
	if role == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(role, ResourceLeaveHistory, ActionReadAll)
	if err != nil {
		s.logger.Error("enforce elevated access failed", zap.String("role", role), zap.Error(err))
		return false
	}
	return allowed
}
