package generators

import "context"

// Delta is one streamed fragment of a reply.
type Delta struct {
	Content   string
	Reasoning string
}

type OnDelta func(Delta)

type onDeltaKey struct{}

// WithOnDelta installs a callback for streamed fragments of replies generated under ctx.
func WithOnDelta(ctx context.Context, fn OnDelta) context.Context {
	return context.WithValue(ctx, onDeltaKey{}, fn)
}

func onDeltaFrom(ctx context.Context) OnDelta {
	if fn, ok := ctx.Value(onDeltaKey{}).(OnDelta); ok && fn != nil {
		return fn
	}
	return func(Delta) {}
}
