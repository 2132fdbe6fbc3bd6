// Package app wires the chat, health, and billing endpoints around their
// external collaborators.
package app

import (
	"time"

	"github.com/kbrown517/Veteran-Compass-Corps/app/config"
)

// IdentityResolver turns a raw Authorization header into a stable user ID,
// or reports the request is unauthenticated. Implementations must absorb
// verification failures rather than surface them.
type IdentityResolver interface {
	Resolve(authHeader string) (userID string, ok bool)
}

// Server holds the per-process collaborators. All fields are set once at
// startup and read-only afterwards, so a single Server value is shared
// safely across concurrent requests. Any collaborator may be nil, in which
// case the dependent feature degrades per its fail policy.
type Server struct {
	identity  IdentityResolver
	members   MembershipStore
	usage     UsageStore
	completer Completer
	store     *Store
	stripe    config.StripeConfig
	now       func() time.Time
}

// ServerOptions are the injectable collaborators for NewServer.
type ServerOptions struct {
	Identity  IdentityResolver
	Store     *Store
	Completer Completer
	Stripe    config.StripeConfig
	Now       func() time.Time
}

// NewServer builds a Server from explicitly constructed collaborators.
func NewServer(opts ServerOptions) *Server {
	s := &Server{
		identity:  opts.Identity,
		completer: opts.Completer,
		stripe:    opts.Stripe,
		now:       opts.Now,
	}
	if opts.Store != nil {
		s.store = opts.Store
		s.members = opts.Store
		s.usage = opts.Store
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}
