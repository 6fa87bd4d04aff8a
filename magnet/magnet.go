package magnet

import (
	"math/big"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Header is the prefix every magnet link has to start with
const Header = "magnet:?"

// Only xt, tr, dn, xl and kt are managed, experimental fields are ignored.
// A key only counts at the start of the query or right after a '&'.
var (
	xtRegexp = fieldRegexp("xt")
	trRegexp = fieldRegexp("tr")
	dnRegexp = fieldRegexp("dn")
	xlRegexp = fieldRegexp("xl")
	ktRegexp = fieldRegexp("kt")

	urnRegexp    = regexp.MustCompile(`^urn:[a-z0-9]+:[a-z0-9]+$`)
	digitsRegexp = regexp.MustCompile(`^[0-9]+$`)

	errInvalidUTF8 = errors.New("does not decode to valid utf-8")
)

func fieldRegexp(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|&)` + key + `=([^&]*)`)
}

// Magnet contains the fields of a parsed magnet link.
// See https://en.wikipedia.org/wiki/Magnet_URI_scheme
type Magnet struct {
	Raw      string       `json:"-"`
	Topics   []ExactTopic `json:"xt"` // eXact Topics, urns containing hashes
	Trackers []Tracker    `json:"tr"`
	Name     string       `json:"dn"` // Display Name, the last dn in the link
	Length   *big.Int     `json:"xl"` // eXact Length in bytes, never nil
	Keywords []string     `json:"kt"`

	// Skipped holds the entries that could not be parsed, in the order they were found.
	// Bad xt and tr entries are dropped, a dn that fails to decode is kept undecoded.
	Skipped []Skipped `json:"-"`
}

// Skipped is a field entry that could not be parsed and was left out of the magnet
type Skipped struct {
	Field string
	Value string
	Err   error
}

// New parses a magnet link, skipped fields get logged through the standard logger
func New(s string) (*Magnet, error) {
	return NewWithLogger(s, nil)
}

// NewWithLogger parses a magnet link. A single bad xt or tr entry is skipped and logged
// as a warning on l, a missing header or a bad xl fails the whole link.
func NewWithLogger(s string, l *logrus.Entry) (*Magnet, error) {
	if l == nil {
		l = logrus.NewEntry(logrus.StandardLogger())
	}

	if !strings.HasPrefix(s, Header) {
		return nil, ErrMissingHeader
	}
	query := s[len(Header):]

	m := &Magnet{
		Raw:    s,
		Length: new(big.Int),
	}
	skip := func(field, value string, err error) {
		l.WithError(err).WithFields(logrus.Fields{
			"Field": field,
			"Value": value,
		}).Warnf("Skipping magnet field")
		m.Skipped = append(m.Skipped, Skipped{Field: field, Value: value, Err: err})
	}

	for _, xt := range submatches(xtRegexp, query) {
		topic, err := parseTopicField(xt)
		if err != nil {
			skip("xt", xt, err)
			continue
		}
		m.Topics = append(m.Topics, topic)
	}

	for _, tr := range submatches(trRegexp, query) {
		address, err := percentDecode(tr)
		if err != nil {
			skip("tr", tr, errors.WithMessage(ErrMalformedTrackerAddress, err.Error()))
			continue
		}
		tracker, err := ParseTracker(address)
		if err != nil {
			skip("tr", tr, err)
			continue
		}
		m.Trackers = append(m.Trackers, tracker)
	}

	// Last dn wins
	if dns := submatches(dnRegexp, query); len(dns) > 0 {
		dn := dns[len(dns)-1]
		name, err := percentDecode(dn)
		if err != nil {
			skip("dn", dn, err)
			name = dn
		}
		m.Name = name
	}

	if xl := xlRegexp.FindStringSubmatch(query); xl != nil {
		length, err := parseLength(xl[1])
		if err != nil {
			return nil, err
		}
		m.Length = length
	}

	m.Keywords = submatches(ktRegexp, query)

	l.WithFields(logrus.Fields{
		"Topics":   len(m.Topics),
		"Trackers": len(m.Trackers),
		"Skipped":  len(m.Skipped),
	}).Debugf("Parsed magnet link")
	return m, nil
}

// Header gives back the header the link was parsed with
func (m *Magnet) Header() string {
	return Header
}

// parseTopicField parses the value of an xt field, which is an urn restricted to lowercase
// alphanumeric technology and hash tokens
func parseTopicField(s string) (ExactTopic, error) {
	topic, err := ParseExactTopic(s)
	if err != nil {
		return ExactTopic{}, err
	}
	if !urnRegexp.MatchString(s) {
		return ExactTopic{}, errors.WithMessage(ErrMalformedExactTopic, "hash must be lowercase alphanumeric")
	}
	return topic, nil
}

func parseLength(s string) (*big.Int, error) {
	if !digitsRegexp.MatchString(s) {
		return nil, errors.WithMessagef(ErrInvalidLength, "%q", s)
	}
	length, ok := new(big.Int).SetString(s, 10)
	if !ok || length.BitLen() > 128 {
		return nil, errors.WithMessagef(ErrInvalidLength, "%q does not fit in 128 bits", s)
	}
	return length, nil
}

// percentDecode decodes %XX escapes. A '+' stays a '+'.
func percentDecode(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(decoded) {
		return "", errors.WithMessagef(errInvalidUTF8, "%q", s)
	}
	return decoded, nil
}

func submatches(re *regexp.Regexp, s string) []string {
	var values []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		values = append(values, m[1])
	}
	return values
}
