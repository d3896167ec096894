package messagehub

import (
	"context"
	stderrors "errors"
)

// Fanout publishes to every publisher and reports all failures together.
// One failing transport does not stop delivery on the others.
type Fanout struct {
	publishers []Publisher
}

// NewFanout combines publishers; nil entries are skipped
func NewFanout(publishers ...Publisher) *Fanout {
	out := make([]Publisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return &Fanout{publishers: out}
}

// Publish implements Publisher
func (f *Fanout) Publish(ctx context.Context, topic string, payload map[string]any) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, topic, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
