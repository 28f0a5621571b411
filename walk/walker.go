package walk

import (
	"log/slog"

	"github.com/vk/scenewalk/scene"
)

// Walker runs traversals against one scene through its accessor. A Walker is
// stateless between calls and may be reused for any number of traversals.
type Walker struct {
	acc scene.Accessor
	log *slog.Logger
}

// WalkerOption configures a Walker at construction time.
type WalkerOption func(*Walker)

// WithLogger sets the logger used for debug messages about skipped plugs
// (placeholder elements, non-connectable arrays). Defaults to slog.Default().
func WithLogger(log *slog.Logger) WalkerOption {
	return func(w *Walker) {
		w.log = log
	}
}

// New returns a Walker traversing the scene behind acc.
func New(acc scene.Accessor, opts ...WalkerOption) *Walker {
	w := &Walker{
		acc: acc,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}
