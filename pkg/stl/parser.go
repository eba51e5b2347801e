package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipparndt/gocmm/pkg/geometry"
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader reads an ASCII or binary STL stream
func ParseReader(r io.Reader) (*Model, error) {
	reader := bufio.NewReader(r)

	// Peek at the first bytes to determine the format
	header, err := reader.Peek(5)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read file header")
	}

	if len(header) == 5 && string(header) == "solid" {
		return parseASCII(reader)
	}

	return parseBinary(reader)
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				normal, err := parseVector(fields[2:5])
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: bad facet normal", lineNo)
				}
				currentNormal = normal
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, errors.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			vertex, err := parseVector(fields[1:4])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: bad vertex", lineNo)
			}
			vertices = append(vertices, vertex)

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading ASCII STL")
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// binaryTriangle is the on-disk layout of one binary STL record
type binaryTriangle struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	model.Name = string(bytes.TrimRight(header, "\x00 "))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, errors.Wrap(err, "failed to read triangle count")
	}

	model.Triangles = make([]geometry.Triangle, 0, min(triangleCount, 1<<20))
	for i := uint32(0); i < triangleCount; i++ {
		var rec binaryTriangle
		if err := binary.Read(reader, binary.LittleEndian, &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to read triangle %d", i)
		}
		model.AddTriangle(geometry.NewTriangle(
			fromFloat32(rec.Normal),
			fromFloat32(rec.V1),
			fromFloat32(rec.V2),
			fromFloat32(rec.V3),
		))
	}

	return model, nil
}

func fromFloat32(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
