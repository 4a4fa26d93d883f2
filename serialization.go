package randstat

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const generatorEncoding int32 = 1

// MarshalBinary encodes the generator register so a stream can be resumed
// later with UnmarshalBinary or the Restore option.
func (g Generator) MarshalBinary() ([]byte, error) {
	buffer := new(bytes.Buffer)

	err := binary.Write(buffer, binary.BigEndian, generatorEncoding)
	if err != nil {
		return nil, err
	}

	err = binary.Write(buffer, binary.BigEndian, g.register)
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// UnmarshalBinary restores a register encoded by MarshalBinary.
func (g *Generator) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)

	var encoding int32
	err := binary.Read(buf, binary.BigEndian, &encoding)
	if err != nil {
		return errors.Wrap(err, "reading encoding version")
	}

	if encoding != generatorEncoding {
		return errors.Wrapf(ErrUnsupportedEncoding, "got %d", encoding)
	}

	var register uint32
	err = binary.Read(buf, binary.BigEndian, &register)
	if err != nil {
		return errors.Wrap(err, "reading register")
	}

	if buf.Len() != 0 {
		return errors.Errorf("%d trailing bytes after generator state", buf.Len())
	}

	g.register = register
	return nil
}
