package magnet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// <protocol>(://|%3A%2F%2F)<domain>(:|%3A)<port>[/path]
// The domain needs at least one dot and stops at the first separator that is followed by a port.
var trackerRegexp = regexp.MustCompile(`^(?i:(?P<protocol>[a-z]+))(?i:://|%3A%2F%2F)(?P<domain>[^.]+?\..+?)(?i::|%3A)(?P<port>[0-9]+)(?P<path>(?i:/|%2F).*)?$`)

// Tracker is the address of a tracker found in a tr field
type Tracker struct {
	Protocol Protocol `json:"protocol"`
	Domain   string   `json:"domain"`
	Port     uint16   `json:"port"`

	// Path is what follows the port, usually "/announce". Empty when the address stops at the port.
	Path string `json:"path,omitempty"`
}

// ParseTracker parses a tracker address. Separators can be literal or percent encoded, so
// tcp://my-domain.com:69 and tcp%3A%2F%2Fmy-domain.com%3A69 give the same tracker.
func ParseTracker(address string) (Tracker, error) {
	m := trackerRegexp.FindStringSubmatch(address)
	if m == nil {
		return Tracker{}, errors.WithMessagef(ErrMalformedTrackerAddress, "%q", address)
	}
	group := func(name string) string {
		return m[trackerRegexp.SubexpIndex(name)]
	}

	protocol, err := ParseProtocol(strings.ToLower(group("protocol")))
	if err != nil {
		return Tracker{}, err
	}

	port, err := strconv.ParseUint(group("port"), 10, 16)
	if err != nil {
		return Tracker{}, errors.WithMessagef(ErrInvalidPort, "%q", group("port"))
	}

	return Tracker{
		Protocol: protocol,
		Domain:   group("domain"),
		Port:     uint16(port),
		Path:     group("path"),
	}, nil
}

// String gives the tracker url, example udp://tracker.example.com:6969/announce
func (t Tracker) String() string {
	return fmt.Sprintf("%v://%v:%v%v", t.Protocol.Scheme(), t.Domain, t.Port, t.Path)
}
