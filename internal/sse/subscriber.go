package sse

import (
	"context"

	"github.com/special-brownies/booster-pack/internal/domain"
)

// Publish broadcasts a recorded binder event under its own type. It has the
// shape of a binder event observer.
func (h *Hub) Publish(_ context.Context, evt domain.Event) {
	h.Broadcast(evt.Type, evt)
}
