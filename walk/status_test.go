package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionStatusMatches(t *testing.T) {
	cases := []struct {
		name          string
		status        ConnectionStatus
		isSource      bool
		isDestination bool
		want          bool
	}{
		{"any matches disconnected", AnyConnection, false, false, true},
		{"any matches connected", AnyConnection, true, true, true},

		{"connected wants any connection", Connected, false, false, false},
		{"connected matches source", Connected, true, false, true},
		{"connected matches destination", Connected, false, true, true},

		{"connected sources means is destination", ConnectedSources, false, true, true},
		{"connected sources rejects pure source", ConnectedSources, true, false, false},

		{"connected destinations means is source", ConnectedDestinations, true, false, true},
		{"connected destinations rejects pure destination", ConnectedDestinations, false, true, false},

		{"disconnected wants nothing attached", Disconnected, false, false, true},
		{"disconnected rejects source", Disconnected, true, false, false},
		{"disconnected rejects destination", Disconnected, false, true, false},

		{"disconnected sources means no source", DisconnectedSources, true, false, true},
		{"disconnected sources rejects destination", DisconnectedSources, false, true, false},

		{"disconnected destinations means no destinations", DisconnectedDestinations, false, true, true},
		{"disconnected destinations rejects source", DisconnectedDestinations, true, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.Matches(tc.isSource, tc.isDestination))
		})
	}
}

func TestConnectionStatusComplements(t *testing.T) {
	// A plug that is both a source and a destination matches all three
	// Connected values and none of the Disconnected ones.
	for _, s := range []ConnectionStatus{Connected, ConnectedSources, ConnectedDestinations} {
		assert.True(t, s.Matches(true, true), s.String())
	}
	for _, s := range []ConnectionStatus{Disconnected, DisconnectedSources, DisconnectedDestinations} {
		assert.False(t, s.Matches(true, true), s.String())
	}
}

func TestConnectionStatusString(t *testing.T) {
	assert.Equal(t, "Connected", Connected.String())
	assert.Equal(t, "AnyConnection", AnyConnection.String())
	assert.Equal(t, "Unknown", ConnectionStatus(42).String())
}

func TestParseConnectionStatus(t *testing.T) {
	got, err := ParseConnectionStatus("destinations")
	assert.NoError(t, err)
	assert.Equal(t, ConnectedDestinations, got)

	got, err = ParseConnectionStatus("No-Sources")
	assert.NoError(t, err)
	assert.Equal(t, DisconnectedSources, got)

	got, err = ParseConnectionStatus("")
	assert.NoError(t, err)
	assert.Equal(t, AnyConnection, got)

	_, err = ParseConnectionStatus("sideways")
	assert.ErrorContains(t, err, `invalid connection status "sideways"`)
}

func TestDeque(t *testing.T) {
	var d deque[int]
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 1, d.PopFront())
	assert.Equal(t, 3, d.PopBack())
	assert.Equal(t, 2, d.PopFront())
	assert.Equal(t, 0, d.Len())

	// Reusable after drain.
	d.PushBack(4)
	assert.Equal(t, 4, d.PopBack())
}
