package stl

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/philipparndt/gocmm/pkg/geometry"
)

const headerSize = 80

// Write stores the model as a binary STL file
func Write(filename string, model *Model) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	return WriteBinary(file, model)
}

// WriteBinary encodes the model in the binary STL format. The name is
// truncated to fit the 80 byte header and must not start with "solid".
func WriteBinary(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	copy(header, model.Name)
	if len(model.Name) >= 5 && model.Name[:5] == "solid" {
		// Readers would take the file for ASCII.
		header[0] = '_'
	}
	if _, err := bw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return errors.Wrap(err, "failed to write triangle count")
	}

	for i, t := range model.Triangles {
		rec := binaryTriangle{
			Normal: toFloat32(t.Normal),
			V1:     toFloat32(t.V1),
			V2:     toFloat32(t.V2),
			V3:     toFloat32(t.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return errors.Wrapf(err, "failed to write triangle %d", i)
		}
	}

	return errors.Wrap(bw.Flush(), "failed to flush")
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
