package logging

import (
	"context"
	"sync/atomic"
)

// Prefix is prepended to every message that passes a Gate.
const Prefix = "[CoDirectorApp]"

// Gate forwards records to the wrapped Logger only while development mode is
// on. Children created with With share the parent's switch.
type Gate struct {
	next    Logger
	enabled *atomic.Bool
}

func NewGate(next Logger, enabled bool) *Gate {
	g := &Gate{next: next, enabled: &atomic.Bool{}}
	g.enabled.Store(enabled)
	return g
}

// SetDevMode turns output on or off.
func (g *Gate) SetDevMode(on bool) {
	g.enabled.Store(on)
}

func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

func (g *Gate) Debug(ctx context.Context, msg string, args ...any) {
	if g.Enabled() {
		g.next.Debug(ctx, Prefix+" "+msg, args...)
	}
}

func (g *Gate) Info(ctx context.Context, msg string, args ...any) {
	if g.Enabled() {
		g.next.Info(ctx, Prefix+" "+msg, args...)
	}
}

func (g *Gate) Warn(ctx context.Context, msg string, args ...any) {
	if g.Enabled() {
		g.next.Warn(ctx, Prefix+" "+msg, args...)
	}
}

func (g *Gate) Error(ctx context.Context, msg string, args ...any) {
	if g.Enabled() {
		g.next.Error(ctx, Prefix+" "+msg, args...)
	}
}

func (g *Gate) With(args ...any) Logger {
	return &Gate{next: g.next.With(args...), enabled: g.enabled}
}
