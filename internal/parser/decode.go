package parser

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"kut/internal/logger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts captured child output to text. Valid UTF-8 is used as is;
// anything else is decoded as Windows-1252, which is what a Python runtime on
// a legacy console emits. Decoding never fails.
func Decode(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		logger.Warn("output is neither UTF-8 nor Windows-1252, replacing invalid bytes", "err", err)
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	logger.Debug("output is not valid UTF-8, decoded as Windows-1252")
	return string(decoded)
}

// SplitLines splits text on line separators. Both "\n" and "\r\n" endings
// are accepted and a single trailing empty line is dropped.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
