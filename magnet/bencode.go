package magnet

import "github.com/zeebo/bencode"

type bencodeTopic struct {
	Tech string `bencode:"tech"`
	Hash string `bencode:"hash"`
}

type bencodeTracker struct {
	Protocol string `bencode:"protocol"`
	Domain   string `bencode:"domain"`
	Port     uint16 `bencode:"port"`
	Path     string `bencode:"path"`
}

// xl is a string since a 128 bit length does not fit in a bencode integer for most decoders
type bencodeMagnet struct {
	Topics   []bencodeTopic   `bencode:"xt"`
	Trackers []bencodeTracker `bencode:"tr"`
	Name     string           `bencode:"dn"`
	Length   string           `bencode:"xl"`
	Keywords []string         `bencode:"kt"`
}

// Bencode encodes the parsed fields as a bencoded dictionary
func (m *Magnet) Bencode() ([]byte, error) {
	bm := bencodeMagnet{
		Topics:   make([]bencodeTopic, len(m.Topics)),
		Trackers: make([]bencodeTracker, len(m.Trackers)),
		Name:     m.Name,
		Length:   m.Length.String(),
		Keywords: append([]string{}, m.Keywords...),
	}
	for i, xt := range m.Topics {
		bm.Topics[i] = bencodeTopic{Tech: xt.Tech.Token(), Hash: xt.Hash}
	}
	for i, tr := range m.Trackers {
		bm.Trackers[i] = bencodeTracker{
			Protocol: tr.Protocol.Scheme(),
			Domain:   tr.Domain,
			Port:     tr.Port,
			Path:     tr.Path,
		}
	}
	return bencode.EncodeBytes(bm)
}
