package gridscene

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// frameStats holds per-frame counters and timings.
// Only populated when Scene.debug is true.
type frameStats struct {
	updateTime        time.Duration
	nodes             int
	components        int
	visibilityChanges int
}

// drawStats holds per-draw counters and timings.
type drawStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLogFrame logs update stats at debug level.
func (s *Scene) debugLogFrame(stats frameStats) {
	if !s.debug {
		return
	}
	s.log.Debug("frame updated",
		zap.Uint64("frame", s.frame),
		zap.Duration("update", stats.updateTime),
		zap.Int("nodes", stats.nodes),
		zap.Int("components", stats.components),
		zap.Int("visibility_changes", stats.visibilityChanges))
}

// debugLogDraw logs draw stats at debug level.
func (s *Scene) debugLogDraw(stats drawStats) {
	if !s.debug {
		return
	}
	s.log.Debug("frame drawn",
		zap.Uint64("frame", s.frame),
		zap.Duration("traverse", stats.traverseTime),
		zap.Duration("submit", stats.submitTime),
		zap.Duration("total", stats.traverseTime+stats.submitTime),
		zap.Int("commands", stats.commandCount))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("gridscene debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		globalLog.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("node", n.Name))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		globalLog.Warn("child count exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("children", len(n.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}

// NewLogger builds a console logger at the given level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func NewLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncoderConfig.ConsoleSeparator = "  "
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build(zap.Fields(zap.String("component", "gridscene")))
}
