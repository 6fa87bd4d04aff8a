package magnet

import (
	"strconv"

	"github.com/pkg/errors"
)

// Protocol is the transport a tracker is reached with
type Protocol uint8

const (
	HTTP Protocol = iota
	UDP
	FTP
	TCP
)

var protocolTokens = [...]string{
	HTTP: "http",
	UDP:  "udp",
	FTP:  "ftp",
	TCP:  "tcp",
}

// ParseProtocol resolves a lowercase scheme token. Callers lower the case themselves.
func ParseProtocol(token string) (Protocol, error) {
	for p, t := range protocolTokens {
		if t == token {
			return Protocol(p), nil
		}
	}
	return 0, errors.WithMessagef(ErrUnsupportedProtocol, "%q", token)
}

// Scheme is the lowercase token of the protocol, as used in tracker urls
func (p Protocol) Scheme() string {
	if int(p) < len(protocolTokens) {
		return protocolTokens[p]
	}
	return ""
}

func (p Protocol) String() string {
	switch p {
	case HTTP:
		return "HTTP"
	case UDP:
		return "UDP"
	case FTP:
		return "FTP"
	case TCP:
		return "TCP"
	}
	return "Protocol(" + strconv.Itoa(int(p)) + ")"
}

func (p Protocol) MarshalText() ([]byte, error) {
	s := p.Scheme()
	if s == "" {
		return nil, errors.Errorf("unknown protocol %d", p)
	}
	return []byte(s), nil
}

func (p *Protocol) UnmarshalText(b []byte) error {
	v, err := ParseProtocol(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
