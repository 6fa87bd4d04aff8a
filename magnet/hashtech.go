package magnet

import (
	"strconv"

	"github.com/pkg/errors"
)

// HashTech is the technology used to produce the hash of an exact topic
type HashTech uint8

const (
	// TigerTreeHash is "tree"
	TigerTreeHash HashTech = iota
	SHA1
	BitPrint
	// ED2K is the eDonkey2000 hash
	ED2K
	// AICH is the Advanced Intelligent Corruption Handler hash
	AICH
	// Kazaa is "kzhash"
	Kazaa
	// BitTorrentInfoHash is "btih"
	BitTorrentInfoHash
	MD5
)

var hashTechTokens = map[string]HashTech{
	"tree":     TigerTreeHash,
	"sha1":     SHA1,
	"bitprint": BitPrint,
	"ed2k":     ED2K,
	"aich":     AICH,
	"kzhash":   Kazaa,
	"btih":     BitTorrentInfoHash,
	"md5":      MD5,
}

var hashTechNames = [...]string{
	TigerTreeHash:      "TigerTreeHash",
	SHA1:               "SHA1",
	BitPrint:           "BitPrint",
	ED2K:               "ED2K",
	AICH:               "AICH",
	Kazaa:              "Kazaa",
	BitTorrentInfoHash: "BitTorrentInfoHash",
	MD5:                "MD5",
}

// ParseHashTech resolves the token found in urn:<token>:<hash>. Tokens are lowercase and not case folded.
func ParseHashTech(token string) (HashTech, error) {
	ht, ok := hashTechTokens[token]
	if !ok {
		return 0, errors.WithMessagef(ErrUnknownHashTech, "%q", token)
	}
	return ht, nil
}

func (ht HashTech) String() string {
	if int(ht) < len(hashTechNames) {
		return hashTechNames[ht]
	}
	return "HashTech(" + strconv.Itoa(int(ht)) + ")"
}

// Token gives back the urn token of the technology, example BitTorrentInfoHash -> "btih"
func (ht HashTech) Token() string {
	for token, v := range hashTechTokens {
		if v == ht {
			return token
		}
	}
	return ""
}

// MarshalText encodes the technology as its urn token
func (ht HashTech) MarshalText() ([]byte, error) {
	token := ht.Token()
	if token == "" {
		return nil, errors.Errorf("unknown hash technology %d", ht)
	}
	return []byte(token), nil
}

func (ht *HashTech) UnmarshalText(b []byte) error {
	v, err := ParseHashTech(string(b))
	if err != nil {
		return err
	}
	*ht = v
	return nil
}
