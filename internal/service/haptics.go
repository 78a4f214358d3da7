package service

import (
	"context"
	"time"
)

// DefaultPulse is the vibration requested after a task is created.
const DefaultPulse = 50 * time.Millisecond

// Haptics requests a short vibration. Implementations may fail or do nothing;
// callers never treat that as an error.
type Haptics interface {
	Pulse(ctx context.Context, d time.Duration) error
}

type NopHaptics struct{}

func (NopHaptics) Pulse(context.Context, time.Duration) error { return nil }

// HintHaptics records the requested pulse so it can be handed to a client
// that owns the actual vibration motor.
type HintHaptics struct {
	Requested time.Duration
}

func (h *HintHaptics) Pulse(_ context.Context, d time.Duration) error {
	h.Requested = d
	return nil
}

type hapticsKey struct{}

// WithHaptics overrides the service's Haptics for calls made with ctx.
func WithHaptics(ctx context.Context, h Haptics) context.Context {
	return context.WithValue(ctx, hapticsKey{}, h)
}

func hapticsFrom(ctx context.Context, def Haptics) Haptics {
	if h, ok := ctx.Value(hapticsKey{}).(Haptics); ok && h != nil {
		return h
	}
	return def
}
