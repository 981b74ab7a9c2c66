package gridscene

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugModeDisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	child := NewContainer("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") || !strings.Contains(msg, "child") {
			t.Errorf("panic message = %q, want disposed node name", msg)
		}
	}()
	s.Root().AddChild(child)
}

func TestDebugModeDisposedComponentHostPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	e := NewEntity("hero", Size{8, 8}, Cell{})
	e.Node().Dispose()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on AddComponent with disposed node")
		}
	}()
	_ = e.AddComponent(NewViewSync())
}

func TestReleaseModeDisposedNodeNoPanic(t *testing.T) {
	child := NewContainer("child")
	child.Dispose()
	parent := NewContainer("parent")
	parent.AddChild(child) // no debug checks
}

func TestDebugTreeDepthWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewScene()
	s.SetLogger(zap.New(core))
	s.SetDebugMode(true)
	defer func() {
		s.SetDebugMode(false)
		s.SetLogger(nil)
	}()

	n := s.Root()
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		c := NewContainer(fmt.Sprintf("n%d", i))
		n.AddChild(c)
		n = c
	}
	if logs.FilterMessage("tree depth exceeds threshold").Len() == 0 {
		t.Error("expected a tree depth warning")
	}
}

func TestDebugChildCountWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewScene()
	s.SetLogger(zap.New(core))
	s.SetDebugMode(true)
	defer func() {
		s.SetDebugMode(false)
		s.SetLogger(nil)
	}()

	for i := 0; i < debugMaxChildCount; i++ {
		s.Root().AddChild(NewContainer("c"))
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected warnings at the threshold: %d", logs.Len())
	}
	s.Root().AddChild(NewContainer("c"))
	if logs.FilterMessage("child count exceeds threshold").Len() != 1 {
		t.Error("expected one child count warning")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugOn   bool
		infoOn    bool
		warningOn bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"bogus", false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := NewLogger(tt.level)
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			core := log.Core()
			if core.Enabled(zapcore.DebugLevel) != tt.debugOn ||
				core.Enabled(zapcore.InfoLevel) != tt.infoOn ||
				core.Enabled(zapcore.WarnLevel) != tt.warningOn {
				t.Errorf("unexpected levels for %q", tt.level)
			}
		})
	}
}
