package scenarios

import (
	"testing"

	"github.com/zhubert/pillbar/internal/demo"
	perrors "github.com/zhubert/pillbar/internal/errors"
)

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 2 {
		t.Errorf("All() should return 2 scenarios, got %d", len(scenarios))
	}

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"basic", true},
		{"phone", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario, err := Get(tt.name)
			if (scenario != nil) != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, scenario != nil, tt.wantFound)
			}
			if !tt.wantFound && perrors.GetKind(err) != perrors.KindNotFound {
				t.Errorf("Get(%q) error = %v, want a not-found error", tt.name, err)
			}
		})
	}
}

// Running the built-in scenarios checks every expectation they carry.
func TestScenariosRun(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(s)
			if err != nil {
				t.Fatalf("Run(%s) error = %v", s.Name, err)
			}
			if len(frames) < 10 {
				t.Errorf("Run(%s) captured %d frames, want a real recording", s.Name, len(frames))
			}

			annotated := 0
			for _, f := range frames {
				if f.Annotation != "" {
					annotated++
				}
			}
			if annotated == 0 {
				t.Errorf("Run(%s) lost every annotation", s.Name)
			}
		})
	}
}

func TestPhoneScenario(t *testing.T) {
	s := Phone
	if s.Setup == nil || s.Setup.Scale.Column != 5 || s.Setup.Scale.Row != 28 {
		t.Fatalf("Phone setup = %+v, want a 5x28 point cell", s.Setup)
	}
	if w, h := float64(s.Width)*s.Setup.Scale.Column, float64(s.Height)*s.Setup.Scale.Row; w != 375 || h != 812 {
		t.Errorf("viewport = %gx%g, want 375x812", w, h)
	}

	kinds := make(map[demo.StepType]bool)
	for _, step := range s.Steps {
		kinds[step.Type] = true
	}
	for _, k := range []demo.StepType{demo.StepPressTab, demo.StepHold, demo.StepMove, demo.StepRelease, demo.StepSettle, demo.StepExpect} {
		if !kinds[k] {
			t.Errorf("Phone scenario has no step of type %d", k)
		}
	}
}
