package operator

import "github.com/avtorazbor/internal/provider"

// Handler serves the operator-only API: catalog and supplier
// management, inventory placement, order status and user administration.
// Every route behind it runs the operator role gate.
type Handler struct {
	*provider.Container
}

// New creates the operator handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
