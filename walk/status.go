package walk

import (
	"fmt"
	"strings"

	"github.com/vk/scenewalk/scene"
)

// ConnectionStatus classifies the connectivity of a plug. The three
// Disconnected values are the exact complements of the three Connected ones,
// so a plug that is both a source and a destination matches Connected,
// ConnectedSources and ConnectedDestinations at the same time, and never any
// Disconnected value.
type ConnectionStatus int

const (
	// AnyConnection is the zero value and matches every plug. Passing it to
	// Plugs disables connectivity filtering.
	AnyConnection ConnectionStatus = iota

	// Connected matches plugs with any connection at all.
	Connected

	// ConnectedSources matches plugs that have a source / are a destination.
	ConnectedSources

	// ConnectedDestinations matches plugs that have destinations / are a source.
	ConnectedDestinations

	// Disconnected matches plugs with no connection.
	Disconnected

	// DisconnectedSources matches plugs with no source / that are not a destination.
	DisconnectedSources

	// DisconnectedDestinations matches plugs with no destinations / that are not a source.
	DisconnectedDestinations
)

// Matches reports whether a plug with the given connectivity booleans has
// this status. It is a pure function of the two booleans.
func (s ConnectionStatus) Matches(isSource, isDestination bool) bool {
	switch s {
	case Connected:
		return isSource || isDestination
	case ConnectedSources:
		return isDestination
	case ConnectedDestinations:
		return isSource
	case Disconnected:
		return !isSource && !isDestination
	case DisconnectedSources:
		return !isDestination
	case DisconnectedDestinations:
		return !isSource
	}
	return true
}

// String returns the status name for logs and error messages.
func (s ConnectionStatus) String() string {
	switch s {
	case AnyConnection:
		return "AnyConnection"
	case Connected:
		return "Connected"
	case ConnectedSources:
		return "ConnectedSources"
	case ConnectedDestinations:
		return "ConnectedDestinations"
	case Disconnected:
		return "Disconnected"
	case DisconnectedSources:
		return "DisconnectedSources"
	case DisconnectedDestinations:
		return "DisconnectedDestinations"
	}
	return "Unknown"
}

// ParseConnectionStatus converts a user-facing status name (as accepted on
// the command line) into a ConnectionStatus. Matching is case-insensitive.
func ParseConnectionStatus(name string) (ConnectionStatus, error) {
	switch strings.ToLower(name) {
	case "", "any":
		return AnyConnection, nil
	case "connected":
		return Connected, nil
	case "sources":
		return ConnectedSources, nil
	case "destinations":
		return ConnectedDestinations, nil
	case "disconnected":
		return Disconnected, nil
	case "no-sources":
		return DisconnectedSources, nil
	case "no-destinations":
		return DisconnectedDestinations, nil
	}
	return AnyConnection, fmt.Errorf("invalid connection status %q", name)
}

// hasStatus evaluates s against the live connectivity of p.
func (w *Walker) hasStatus(p scene.Plug, s ConnectionStatus) bool {
	if s == AnyConnection {
		return true
	}
	return s.Matches(w.acc.IsSource(p), w.acc.IsDestination(p))
}
