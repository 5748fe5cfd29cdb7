package repository

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/fadilmartias/interview-coach/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed roles.yaml
var rolesYAML []byte

// RoleRepository serves the static role catalog. Lookup is case-insensitive
// against both the catalog key and the display name.
type RoleRepository struct {
	roles []model.Role
}

func NewRoleRepository() (*RoleRepository, error) {
	var roles []model.Role
	if err := yaml.Unmarshal(rolesYAML, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse role catalog: %w", err)
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("role catalog is empty")
	}
	for i, role := range roles {
		if role.Key == "" || role.Name == "" {
			return nil, fmt.Errorf("role catalog entry %d is missing key or name", i)
		}
		if len(role.CoreQuestions) == 0 {
			return nil, fmt.Errorf("role %q has no core questions", role.Key)
		}
	}
	return &RoleRepository{roles: roles}, nil
}

// FindRole matches name against the catalog key or the display name,
// ignoring case. The error message enumerates every valid key.
func (r *RoleRepository) FindRole(name string) (*model.Role, error) {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	for i := range r.roles {
		if strings.ToLower(r.roles[i].Key) == nameLower || strings.ToLower(r.roles[i].Name) == nameLower {
			return &r.roles[i], nil
		}
	}
	return nil, fmt.Errorf("Role '%s' not found. Available roles: %s", name, strings.Join(r.ListRoleKeys(), ", "))
}

// ListRoleKeys returns the catalog keys in catalog order.
func (r *RoleRepository) ListRoleKeys() []string {
	keys := make([]string, 0, len(r.roles))
	for i := range r.roles {
		keys = append(keys, r.roles[i].Key)
	}
	return keys
}
