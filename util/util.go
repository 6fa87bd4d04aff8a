package util

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// FormatLength takes an exact length and returns its formatted form, example 5235745682 -> "5.2 GB"
func FormatLength(b *big.Int) string {
	if b == nil {
		return humanize.Bytes(0)
	}
	return humanize.BigBytes(b)
}

// IsMagnet checks to see if a string looks like a magnet link rather than a url or a file path
func IsMagnet(s string) bool {
	return strings.HasPrefix(s, "magnet:")
}

// NewLogger returns a text logger, debug level when verbose is set
func NewLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
