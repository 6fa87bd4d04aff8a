package magnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTracker(t *testing.T) {
	tests := map[string]struct {
		address string
		tracker Tracker
	}{
		"literal": {
			address: "tcp://my-domain.com:69",
			tracker: Tracker{Protocol: TCP, Domain: "my-domain.com", Port: 69},
		},
		"percent encoded": {
			address: "udp%3A%2F%2Ftracker.example.com%3A80",
			tracker: Tracker{Protocol: UDP, Domain: "tracker.example.com", Port: 80},
		},
		"lowercase percent encoding": {
			address: "udp%3a%2f%2ftracker.example.com%3a80",
			tracker: Tracker{Protocol: UDP, Domain: "tracker.example.com", Port: 80},
		},
		"uppercase protocol": {
			address: "HTTP://tracker.example.com:8080",
			tracker: Tracker{Protocol: HTTP, Domain: "tracker.example.com", Port: 8080},
		},
		"announce path": {
			address: "http://torrent.ubuntu.com:6969/announce",
			tracker: Tracker{Protocol: HTTP, Domain: "torrent.ubuntu.com", Port: 6969, Path: "/announce"},
		},
		"max port": {
			address: "ftp://files.example.org:65535",
			tracker: Tracker{Protocol: FTP, Domain: "files.example.org", Port: 65535},
		},
		"zero port": {
			address: "udp://a.b:0",
			tracker: Tracker{Protocol: UDP, Domain: "a.b", Port: 0},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			tr, err := ParseTracker(test.address)
			assert.NoError(t, err)
			assert.Equal(t, test.tracker, tr)
		})
	}
}

func TestParseTrackerEncodingsMatch(t *testing.T) {
	literal, err := ParseTracker("udp://tracker.example.com:6969")
	assert.NoError(t, err)
	encoded, err := ParseTracker("udp%3A%2F%2Ftracker.example.com%3A6969")
	assert.NoError(t, err)
	assert.Equal(t, literal, encoded)
}

func TestParseTrackerErrors(t *testing.T) {
	tests := map[string]struct {
		address string
		err     error
	}{
		"syntax":            {address: "coucouloucoucou:paloma//test.failed.com", err: ErrMalformedTrackerAddress},
		"no dot in domain":  {address: "udp://localhost:6969", err: ErrMalformedTrackerAddress},
		"no port":           {address: "udp://tracker.example.com", err: ErrMalformedTrackerAddress},
		"port not digits":   {address: "udp://tracker.example.com:port", err: ErrMalformedTrackerAddress},
		"trailing garbage":  {address: "udp://tracker.example.com:6969garbage", err: ErrMalformedTrackerAddress},
		"empty":             {address: "", err: ErrMalformedTrackerAddress},
		"wrong protocol":    {address: "coucouloucoucoupaloma://my-domain.com:69", err: ErrUnsupportedProtocol},
		"websocket":         {address: "wss://tracker.btorrent.xyz:443", err: ErrUnsupportedProtocol},
		"port overflow":     {address: "udp://tracker.example.com:65536", err: ErrInvalidPort},
		"big port overflow": {address: "tcp://my-domain.com:99999999999999999999", err: ErrInvalidPort},
		"encoded overflow":  {address: "udp%3A%2F%2Ftracker.example.com%3A70000", err: ErrInvalidPort},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTracker(test.address)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestTrackerString(t *testing.T) {
	tr := Tracker{Protocol: UDP, Domain: "tracker.example.com", Port: 6969, Path: "/announce"}
	assert.Equal(t, "udp://tracker.example.com:6969/announce", tr.String())

	parsed, err := ParseTracker(tr.String())
	assert.NoError(t, err)
	assert.Equal(t, tr, parsed)
}
