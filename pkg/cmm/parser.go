package cmm

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	markerTag    = "<marker"
	markerSetTag = "<marker_set"

	maxLineLength = 1024 * 1024
)

var coordinateKeys = [3]string{"x", "y", "z"}

// Parse reads a marker file and returns its markers in file order
func Parse(filename string) (*MarkerSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &IOError{Path: filename, Err: err}
	}
	defer file.Close()

	return ParseReader(file, filename)
}

// ParseReader reads marker records from r. source names the input in errors.
// Lines whose first token is not <marker are ignored. A record without
// numeric x, y and z attributes aborts the whole read.
func ParseReader(r io.Reader, source string) (*MarkerSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	set := NewMarkerSet(source)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case markerSetTag:
			if name, ok := attributes(fields[1:])["name"]; ok && set.Name == "" {
				set.Name = name
			}

		case markerTag:
			marker, err := parseMarker(fields[1:])
			if err != nil {
				var malformed *MalformedRecordError
				if errors.As(err, &malformed) {
					malformed.Path = source
					malformed.Line = lineNo
					malformed.Record = strings.TrimSpace(line)
				}
				return nil, err
			}
			marker.Line = lineNo
			set.AddMarker(marker)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: source, Err: errors.Wrapf(err, "line %d", lineNo+1)}
	}

	return set, nil
}

func parseMarker(fields []string) (Marker, error) {
	attrs := attributes(fields)

	var coords [3]float64
	for i, key := range coordinateKeys {
		raw, ok := attrs[key]
		if !ok {
			return Marker{}, &MalformedRecordError{Key: key, Reason: "missing key"}
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return Marker{}, &MalformedRecordError{Key: key, Reason: "non-numeric value " + strconv.Quote(raw) + " for key"}
		}
		coords[i] = value
	}

	marker := Marker{
		ID: attrs["id"],
		X:  coords[0],
		Y:  coords[1],
		Z:  coords[2],
	}
	if raw, ok := attrs["radius"]; ok {
		if radius, err := strconv.ParseFloat(raw, 64); err == nil {
			marker.Radius = radius
		}
	}
	return marker, nil
}

// attributes collects key="value" tokens. The value is the text between the
// first pair of double quotes, so a trailing "/>" or ">" is dropped. A token
// with no quotes at all keeps its raw value, which then fails numeric
// parsing if the key is a coordinate. Later duplicates win.
func attributes(fields []string) map[string]string {
	attrs := make(map[string]string, len(fields))
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" {
			continue
		}
		attrs[key] = unquote(value)
	}
	return attrs
}

func unquote(value string) string {
	start := strings.IndexByte(value, '"')
	if start < 0 {
		return value
	}
	rest := value[start+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return rest
	}
	return rest[:end]
}
