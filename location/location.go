// Package location provides the device position for the home screen.
package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/qyinm/nearby/types"
)

// Permission is the outcome of a foreground location permission request
type Permission int

const (
	Undetermined Permission = iota
	Granted
	Denied
)

func (p Permission) String() string {
	switch p {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "undetermined"
	}
}

// ErrPermissionDenied is returned when reading a position without permission
var ErrPermissionDenied = errors.New("location permission denied")

// Provider grants foreground access and reads a single position snapshot.
type Provider interface {
	RequestForegroundPermission(ctx context.Context) (Permission, error)
	CurrentPosition(ctx context.Context) (types.Location, error)
}

// Static serves a fixed, configured position. Without one it denies access.
type Static struct {
	loc     *types.Location
	granted bool
}

var _ Provider = (*Static)(nil)

// NewStatic creates a provider for loc. A nil loc means the user never shared a position.
func NewStatic(loc *types.Location) *Static {
	return &Static{loc: loc}
}

func (s *Static) RequestForegroundPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return Undetermined, err
	}
	if s.loc == nil {
		return Denied, nil
	}
	s.granted = true
	return Granted, nil
}

func (s *Static) CurrentPosition(ctx context.Context) (types.Location, error) {
	if err := ctx.Err(); err != nil {
		return types.Location{}, err
	}
	if !s.granted || s.loc == nil {
		return types.Location{}, ErrPermissionDenied
	}
	return *s.loc, nil
}

// Request asks for permission and, when granted, reads the position once.
// A denial is reported as granted=false with a nil error.
func Request(ctx context.Context, p Provider) (types.Location, bool, error) {
	perm, err := p.RequestForegroundPermission(ctx)
	if err != nil {
		return types.Location{}, false, fmt.Errorf("request permission: %w", err)
	}
	if perm != Granted {
		return types.Location{}, false, nil
	}

	loc, err := p.CurrentPosition(ctx)
	if err != nil {
		return types.Location{}, true, fmt.Errorf("read position: %w", err)
	}
	return loc, true, nil
}
