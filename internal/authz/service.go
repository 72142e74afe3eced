package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiV1Prefix     = "/api/v1"
	casbinTableName = "casbin_rule"
	rolePrefix      = "role:"
)

// 主体为角色，资源为去掉 /api/v1 的 gin 路由模板，动作为 HTTP 方法或 *
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// ErrUnavailable 授权服务未初始化
var ErrUnavailable = errors.New("authz service unavailable")

// Policy 权限策略
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

func (p Policy) key() string {
	return p.Subject + " " + p.Object + " " + p.Action
}

// Service 管理端 RBAC，策略持久化在 casbin_rule 表
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务并加载已有策略
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, errors.New("authz db is nil")
	}
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter: %w", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parse authz model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

// EnforceRole 判定角色能否以 act 访问 obj
func (s *Service) EnforceRole(role, obj, act string) (bool, error) {
	if s == nil || s.enforcer == nil {
		return false, ErrUnavailable
	}
	subject, err := NormalizeRole(role)
	if err != nil {
		return false, err
	}
	return s.enforcer.Enforce(subject, NormalizeObject(obj), NormalizeAction(act))
}

// GetRolePolicies 角色当前策略，按资源、动作排序
func (s *Service) GetRolePolicies(role string) ([]Policy, error) {
	if s == nil || s.enforcer == nil {
		return nil, ErrUnavailable
	}
	subject, err := NormalizeRole(role)
	if err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredPolicy(0, subject)
	if err != nil {
		return nil, fmt.Errorf("get role policies: %w", err)
	}
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		policies = append(policies, Policy{Subject: rule[0], Object: rule[1], Action: rule[2]})
	}
	sort.Slice(policies, func(i, j int) bool {
		if policies[i].Object == policies[j].Object {
			return policies[i].Action < policies[j].Action
		}
		return policies[i].Object < policies[j].Object
	})
	return policies, nil
}

// SyncRole 使角色策略与 desired 完全一致：补齐缺失项并移除多余项，返回增删条数
func (s *Service) SyncRole(role string, desired []Policy) (added, removed int, err error) {
	if s == nil || s.enforcer == nil {
		return 0, 0, ErrUnavailable
	}
	subject, err := NormalizeRole(role)
	if err != nil {
		return 0, 0, err
	}

	want := make(map[string]Policy, len(desired))
	for _, p := range desired {
		p = Policy{Subject: subject, Object: NormalizeObject(p.Object), Action: NormalizeAction(p.Action)}
		if p.Action == "" {
			return 0, 0, fmt.Errorf("action is required for %s", p.Object)
		}
		want[p.key()] = p
	}
	current, err := s.GetRolePolicies(role)
	if err != nil {
		return 0, 0, err
	}

	var stale [][]string
	for _, p := range current {
		if _, ok := want[p.key()]; ok {
			delete(want, p.key())
			continue
		}
		stale = append(stale, []string{p.Subject, p.Object, p.Action})
	}
	if len(stale) > 0 {
		if _, err := s.enforcer.RemovePolicies(stale); err != nil {
			return 0, 0, fmt.Errorf("remove stale policies: %w", err)
		}
	}
	if len(want) > 0 {
		missing := make([][]string, 0, len(want))
		for _, p := range want {
			missing = append(missing, []string{p.Subject, p.Object, p.Action})
		}
		if _, err := s.enforcer.AddPolicies(missing); err != nil {
			return 0, len(stale), fmt.Errorf("add policies: %w", err)
		}
	}
	return len(want), len(stale), nil
}

// NormalizeRole 角色名转为 casbin 主体，例如 "order manager" -> "role:order_manager"
func NormalizeRole(role string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(role), rolePrefix)
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if name == "" {
		return "", errors.New("role is required")
	}
	return rolePrefix + name, nil
}

// NormalizeObject 统一资源路径：补前导 /，去掉 /api/v1 前缀
func NormalizeObject(object string) string {
	path := strings.TrimSpace(object)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	switch {
	case path == apiV1Prefix:
		return "/"
	case strings.HasPrefix(path, apiV1Prefix+"/"):
		return strings.TrimPrefix(path, apiV1Prefix)
	default:
		return path
	}
}

// NormalizeAction 动作统一大写
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
