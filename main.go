package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Squwid/squidmagnet/magnet"
	"github.com/Squwid/squidmagnet/util"
	"github.com/jpillora/opts"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var version = "0.0.0-src" // set with ldflags

type config struct {
	Link    string `opts:"mode=arg,help=magnet link to parse"`
	Format  string `opts:"help=output format: text json or bencode"`
	Verbose bool   `opts:"help=log skipped fields and parse details"`
}

func main() {
	c := config{Format: "text"}
	opts.New(&c).Name("squidmagnet").Version(version).UseEnv().Parse()

	logger := util.NewLogger(c.Verbose)
	if err := run(c, os.Stdout, logrus.NewEntry(logger)); err != nil {
		logger.WithError(err).Errorf("Error parsing magnet link")
		os.Exit(1)
	}
}

func run(c config, w io.Writer, l *logrus.Entry) error {
	if !util.IsMagnet(c.Link) {
		l.WithField("Link", c.Link).Warnf("Link does not look like a magnet link")
	}

	m, err := magnet.NewWithLogger(c.Link, l)
	if err != nil {
		return err
	}

	switch c.Format {
	case "text":
		return writeText(w, m)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case "bencode":
		bs, err := m.Bencode()
		if err != nil {
			return err
		}
		_, err = w.Write(bs)
		return err
	}
	return errors.Errorf("unknown output format %q", c.Format)
}

// writeText prints the header, the exact topics, the trackers and the name, one per line
func writeText(w io.Writer, m *magnet.Magnet) error {
	lines := []string{m.Header()}
	for _, xt := range m.Topics {
		lines = append(lines, xt.String())
	}
	for _, tr := range m.Trackers {
		lines = append(lines, fmt.Sprintf("protocol: %v, domain: %v, port: %v", tr.Protocol, tr.Domain, tr.Port))
	}
	lines = append(lines, m.Name)
	if m.Length.Sign() > 0 {
		lines = append(lines, "length: "+util.FormatLength(m.Length))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
