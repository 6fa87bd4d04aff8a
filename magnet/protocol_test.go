package magnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProtocol(t *testing.T) {
	tests := map[string]Protocol{
		"http": HTTP,
		"udp":  UDP,
		"ftp":  FTP,
		"tcp":  TCP,
	}

	for token, protocol := range tests {
		p, err := ParseProtocol(token)
		assert.NoError(t, err)
		assert.Equal(t, protocol, p)
		assert.Equal(t, token, p.Scheme())
	}
}

func TestParseProtocolUnsupported(t *testing.T) {
	for _, token := range []string{"bite", "wss", "https", "UDP", ""} {
		_, err := ParseProtocol(token)
		assert.ErrorIs(t, err, ErrUnsupportedProtocol, token)
	}
}

func TestProtocolText(t *testing.T) {
	b, err := UDP.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "udp", string(b))
	assert.Equal(t, "UDP", UDP.String())

	var p Protocol
	assert.Error(t, p.UnmarshalText([]byte("gopher")))
	assert.NoError(t, p.UnmarshalText([]byte("ftp")))
	assert.Equal(t, FTP, p)
}
