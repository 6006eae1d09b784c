package module

import (
	"context"

	"roamly/internal/core/results"
	browsedom "roamly/internal/services/api/browse/domain"
	browsesvc "roamly/internal/services/api/browse/service"
)

// Ports exposes what sibling modules may depend on
type Ports struct {
	Sessions browsedom.SessionsPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSessionsPort adapts the browse service to the sessions port interface
type adaptSessionsPort struct{ svc *browsesvc.Svc }

// Engine implements the domain SessionsPort interface
func (a adaptSessionsPort) Engine(ctx context.Context, sessionID string) (*results.Engine, error) {
	return a.svc.Engine(ctx, sessionID)
}
