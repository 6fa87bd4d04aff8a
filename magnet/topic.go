package magnet

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ExactTopic is an urn pairing a content hash with the technology that produced it
type ExactTopic struct {
	Tech HashTech `json:"tech"`
	Hash string   `json:"hash"`
}

// ParseExactTopic parses urn:<tech>:<hash>. The hash is kept verbatim and is not checked against its technology.
func ParseExactTopic(s string) (ExactTopic, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ExactTopic{}, errors.WithMessage(ErrMalformedExactTopic, "expected 3 colon-separated parts")
	}
	if parts[0] != "urn" {
		return ExactTopic{}, errors.WithMessage(ErrMalformedExactTopic, "must start with urn")
	}

	tech, err := ParseHashTech(parts[1])
	if err != nil {
		return ExactTopic{}, err
	}

	return ExactTopic{Tech: tech, Hash: parts[2]}, nil
}

// URN formats the topic back to urn:<tech>:<hash>
func (xt ExactTopic) URN() string {
	return "urn:" + xt.Tech.Token() + ":" + xt.Hash
}

func (xt ExactTopic) String() string {
	return fmt.Sprintf("urn: %v - hash: %v", xt.Tech, xt.Hash)
}
