package authz

import (
	"fmt"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// resourcePolicies 为资源集合生成完整读写策略（列表路径与其子路径）
func resourcePolicies(resources ...string) []Policy {
	policies := make([]Policy, 0, len(resources)*2)
	for _, resource := range resources {
		policies = append(policies,
			Policy{Object: "/admin/" + resource, Action: "*"},
			Policy{Object: "/admin/" + resource + "/*", Action: "*"},
		)
	}
	return policies
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds() []RoleSeed {
	upload := Policy{Object: "/admin/upload", Action: "POST"}
	return []RoleSeed{
		{
			Role:     constants.RoleSuperAdmin,
			Policies: []Policy{{Object: "/admin/*", Action: "*"}},
		},
		{
			Role: constants.RoleCatalogManager,
			Policies: append(resourcePolicies(
				"categories",
				"subcategories",
				"products",
				"product-sections",
			), upload),
		},
		{
			Role: constants.RoleContentManager,
			Policies: append(resourcePolicies(
				"banners",
				"mid-banners",
				"feature-cards",
				"menu-items",
				"footer-sections",
				"footer-links",
				"social-links",
				"settings",
			), upload),
		},
		{
			Role: constants.RoleOrderManager,
			Policies: resourcePolicies(
				"orders",
				"coupons",
				"shipping-methods",
				"reviews",
				"questions",
				"customers",
			),
		},
	}
}

// BootstrapBuiltinRoles 按预置矩阵同步内置角色策略，矩阵调整后旧策略会被移除
func (s *Service) BootstrapBuiltinRoles() error {
	totalAdded, totalRemoved := 0, 0
	for _, seed := range BuiltinRoleSeeds() {
		added, removed, err := s.SyncRole(seed.Role, seed.Policies)
		if err != nil {
			return fmt.Errorf("sync role %s: %w", seed.Role, err)
		}
		totalAdded += added
		totalRemoved += removed
	}
	if totalAdded > 0 || totalRemoved > 0 {
		logger.Infow("authz_builtin_roles_synced", "added_rules", totalAdded, "removed_rules", totalRemoved)
	}
	return nil
}

// IsBuiltinRole 判断是否为内置角色
func IsBuiltinRole(role string) bool {
	for _, item := range constants.AdminRoles {
		if item == role {
			return true
		}
	}
	return false
}
