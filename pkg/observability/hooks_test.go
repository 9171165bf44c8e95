package observability

import (
	"context"
	"testing"
	"time"
)

type testGeneratorHooks struct {
	starts    int
	completes int
}

func (h *testGeneratorHooks) OnGenerateStart(context.Context, string, string) { h.starts++ }
func (h *testGeneratorHooks) OnGenerateComplete(context.Context, string, string, int64, time.Duration, error) {
	h.completes++
}

type testPlanHooks struct{}

func (testPlanHooks) OnEntryStart(context.Context, string, string) {}
func (testPlanHooks) OnEntryComplete(context.Context, string, string, int64, time.Duration, error) {
}
func (testPlanHooks) OnPlanComplete(context.Context, string, int, int, time.Duration) {}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGeneratorHooks{}
	g.OnGenerateStart(ctx, "random", "data/small/random_1k.txt")
	g.OnGenerateComplete(ctx, "random", "data/small/random_1k.txt", 5000, time.Second, nil)

	p := NoopPlanHooks{}
	p.OnEntryStart(ctx, "run-1", "random_1k")
	p.OnEntryComplete(ctx, "run-1", "random_1k", 5000, time.Second, nil)
	p.OnPlanComplete(ctx, "run-1", 3, 0, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	// Verify defaults are noop
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Error("Generator() should return NoopGeneratorHooks by default")
	}
	if _, ok := Plan().(NoopPlanHooks); !ok {
		t.Error("Plan() should return NoopPlanHooks by default")
	}

	// Set custom hooks
	customGen := &testGeneratorHooks{}
	SetGeneratorHooks(customGen)
	if Generator() != customGen {
		t.Error("SetGeneratorHooks should set custom hooks")
	}

	customPlan := testPlanHooks{}
	SetPlanHooks(customPlan)
	if Plan() != customPlan {
		t.Error("SetPlanHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Error("Reset() should restore NoopGeneratorHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGeneratorHooks{}
	SetGeneratorHooks(custom)
	SetGeneratorHooks(nil)
	if Generator() != custom {
		t.Error("SetGeneratorHooks(nil) should keep previous hooks")
	}

	SetPlanHooks(nil)
	if _, ok := Plan().(NoopPlanHooks); !ok {
		t.Error("SetPlanHooks(nil) should keep noop hooks")
	}
}
