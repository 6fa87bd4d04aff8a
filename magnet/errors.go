package magnet

import "github.com/pkg/errors"

var (
	// ErrMissingHeader is returned when a link does not start with magnet:?
	ErrMissingHeader = errors.New("magnet header not found")

	// ErrInvalidLength is returned when xl is present but not an unsigned 128 bit integer
	ErrInvalidLength = errors.New("invalid exact length")

	ErrUnknownHashTech         = errors.New("hash technology is not managed")
	ErrMalformedExactTopic     = errors.New("malformed exact topic")
	ErrUnsupportedProtocol     = errors.New("tracker protocol is not supported")
	ErrMalformedTrackerAddress = errors.New("not a valid tracker address")
	ErrInvalidPort             = errors.New("invalid tracker port")

	// Only returned by the metainfo conversion
	ErrNoInfoHash      = errors.New("no btih exact topic")
	ErrInvalidInfoHash = errors.New("invalid btih info hash")
)
