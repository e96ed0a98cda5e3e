package team

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAnalysisRolesOrderAndUniqueness(t *testing.T) {
	roles := DefaultAnalysisRoles()

	assert.Len(t, roles, 3)
	assert.Equal(t, RoleStructure, roles[0].Name)
	assert.Equal(t, RoleLegal, roles[1].Name)
	assert.Equal(t, RoleNegotiation, roles[2].Name)

	seen := map[string]bool{}
	for _, role := range roles {
		assert.False(t, seen[role.Name], "duplicate role name %s", role.Name)
		seen[role.Name] = true
	}
}

func TestRoleSystemPromptContainsAllInstructions(t *testing.T) {
	for name, role := range Roles {
		prompt := role.SystemPrompt()
		assert.Contains(t, prompt, role.Description, "role %s", name)
		for _, instruction := range role.Instructions {
			assert.Contains(t, prompt, instruction, "role %s", name)
		}
	}
}

func TestAnalysisRolesConstrainEvidenceAndScope(t *testing.T) {
	// 所有分析角色都必须被限制在给定文本内工作
	for _, role := range DefaultAnalysisRoles() {
		prompt := role.SystemPrompt()
		assert.Contains(t, prompt, "Work ONLY from the provided contract text", "role %s", role.Name)
	}

	// Manager 禁止编造条款并要求证据引用
	manager := Roles[RoleManager].SystemPrompt()
	assert.Contains(t, manager, "Do not invent clauses")
	assert.Contains(t, manager, "short exact quote")
}

func TestManagerInstructionsSuppressTraces(t *testing.T) {
	prompt := Roles[RoleManager].SystemPrompt()
	if !strings.Contains(prompt, "Do NOT include raw agent traces") {
		t.Error("manager must be instructed to keep traces internal")
	}
}
