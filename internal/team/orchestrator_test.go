package team

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// stubGenerator 可编程的生成能力替身
type stubGenerator struct {
	mu    sync.Mutex
	calls []stubCall
	// failWhen 非空时，system prompt 含该子串的调用返回错误
	failWhen string
	// respond 自定义响应；为空时返回固定文本
	respond func(systemPrompt, userPrompt string) string
}

type stubCall struct {
	systemPrompt string
	userPrompt   string
}

func (s *stubGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.calls = append(s.calls, stubCall{systemPrompt: systemPrompt, userPrompt: userPrompt})
	s.mu.Unlock()

	if s.failWhen != "" && strings.Contains(systemPrompt, s.failWhen) {
		return "", errors.New("generation backend unavailable")
	}
	if s.respond != nil {
		return s.respond(systemPrompt, userPrompt), nil
	}
	return "stub output", nil
}

func (s *stubGenerator) callsSnapshot() []stubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stubCall(nil), s.calls...)
}

func TestRunAllReturnsReportsInRoleOrder(t *testing.T) {
	gen := &stubGenerator{
		respond: func(systemPrompt, _ string) string {
			return fmt.Sprintf("report for prompt %d bytes", len(systemPrompt))
		},
	}
	orch := NewOrchestrator(gen)
	roles := DefaultAnalysisRoles()

	reports, err := orch.RunAll(context.Background(), roles, "Termination: 30 days notice.", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	for i, role := range roles {
		if reports[i].AgentName != role.Name {
			t.Errorf("report %d: expected agent %s, got %s", i, role.Name, reports[i].AgentName)
		}
		if reports[i].RawOutput == "" {
			t.Errorf("report %d: expected non-empty raw output", i)
		}
	}
}

func TestRunAllSharesIdenticalInputAcrossRoles(t *testing.T) {
	gen := &stubGenerator{}
	orch := NewOrchestrator(gen)

	if _, err := orch.RunAll(context.Background(), DefaultAnalysisRoles(), "some contract", "reduce liability"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := gen.callsSnapshot()
	if len(calls) != 3 {
		t.Fatalf("expected 3 generator calls, got %d", len(calls))
	}
	for i, call := range calls {
		if call.userPrompt != calls[0].userPrompt {
			t.Errorf("call %d received a different user prompt", i)
		}
		if !strings.Contains(call.userPrompt, "reduce liability") {
			t.Errorf("call %d: user goal missing from prompt", i)
		}
		if !strings.Contains(call.userPrompt, "some contract") {
			t.Errorf("call %d: contract text missing from prompt", i)
		}
	}
}

func TestRunAllFailFastNamesFailingRole(t *testing.T) {
	gen := &stubGenerator{failWhen: Roles[RoleLegal].Description}
	orch := NewOrchestrator(gen)

	_, err := orch.RunAll(context.Background(), DefaultAnalysisRoles(), "text", "")
	if err == nil {
		t.Fatal("expected error")
	}

	var roleErr *RoleExecutionError
	if !errors.As(err, &roleErr) {
		t.Fatalf("expected RoleExecutionError, got %T: %v", err, err)
	}
	if roleErr.Role != RoleLegal {
		t.Errorf("expected failing role %s, got %s", RoleLegal, roleErr.Role)
	}
}

func TestBuildRoleUserPromptEmptyInputs(t *testing.T) {
	prompt := buildRoleUserPrompt("", "")
	if !strings.Contains(prompt, "N/A") {
		t.Error("expected N/A goal placeholder")
	}
	if !strings.Contains(prompt, "no text could be extracted") {
		t.Error("expected explicit empty-content marker")
	}
}
