package public

import "github.com/avtorazbor/internal/provider"

// Handler serves the client-facing API: catalog reads, account
// management, orders, reviews and favorites.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
