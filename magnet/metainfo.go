package magnet

import (
	"encoding/base32"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/anacrolix/torrent/metainfo"
	"github.com/pkg/errors"
)

// Metainfo converts the magnet to the anacrolix/torrent representation so it can be handed to a client.
// The first btih topic becomes the info hash, the other topics are kept in the xt params.
func (m *Magnet) Metainfo() (metainfo.Magnet, error) {
	var mi metainfo.Magnet

	found := false
	for _, xt := range m.Topics {
		if xt.Tech != BitTorrentInfoHash || found {
			addParam(&mi, "xt", xt.URN())
			continue
		}
		ih, err := infoHash(xt.Hash)
		if err != nil {
			return metainfo.Magnet{}, err
		}
		mi.InfoHash = ih
		found = true
	}
	if !found {
		return metainfo.Magnet{}, ErrNoInfoHash
	}

	for _, tr := range m.Trackers {
		mi.Trackers = append(mi.Trackers, tr.String())
	}
	mi.DisplayName = m.Name

	if m.Length.Sign() > 0 {
		addParam(&mi, "xl", m.Length.String())
	}
	for _, kt := range m.Keywords {
		addParam(&mi, "kt", kt)
	}
	return mi, nil
}

// infoHash decodes a btih hash, 40 chars is hex and 32 chars is base32
func infoHash(s string) (metainfo.Hash, error) {
	var ih metainfo.Hash
	switch len(s) {
	case 40:
		if _, err := hex.Decode(ih[:], []byte(s)); err != nil {
			return ih, errors.WithMessage(ErrInvalidInfoHash, err.Error())
		}
	case 32:
		if _, err := base32.StdEncoding.Decode(ih[:], []byte(strings.ToUpper(s))); err != nil {
			return ih, errors.WithMessage(ErrInvalidInfoHash, err.Error())
		}
	default:
		return ih, errors.WithMessagef(ErrInvalidInfoHash, "unexpected length %v", len(s))
	}
	return ih, nil
}

func addParam(mi *metainfo.Magnet, key, value string) {
	if mi.Params == nil {
		mi.Params = make(url.Values)
	}
	mi.Params.Add(key, value)
}
