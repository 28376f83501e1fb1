/*
Package record stores opaque fixed-width byte records in the containers of
package dsc.

A Layout fixes the width of the records of a container. Values of any
fixed-size type (see encoding/binary) may be encoded into records of a
matching layout and decoded back. Containers created by this package copy
records on the way in and on the way out, thus clients never share storage
with a container.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package record

import (
	"bytes"
	"encoding/binary"

	"github.com/npillmayer/dsc"
)

// Record is an opaque fixed-width payload.
type Record []byte

// Layout describes records of a fixed size in bytes.
type Layout struct {
	Size int
}

// NewLayout creates a layout for records of size bytes. size has to be
// positive.
func NewLayout(size int) (Layout, error) {
	if size <= 0 {
		return Layout{}, dsc.Errorf(dsc.InvalidParameter, "record.NewLayout",
			"item size has to be positive, is %d", size)
	}
	return Layout{Size: size}, nil
}

// LayoutOf creates a layout matching the binary size of v.
func LayoutOf(v any) (Layout, error) {
	size := binary.Size(v)
	if size < 0 {
		return Layout{}, dsc.Errorf(dsc.InvalidParameter, "record.LayoutOf",
			"type %T has no fixed binary size", v)
	}
	return NewLayout(size)
}

// Encode writes the little-endian binary representation of v into a new
// record. The binary size of v has to match the layout.
func (l Layout) Encode(v any) (Record, error) {
	if size := binary.Size(v); size != l.Size {
		return nil, dsc.Errorf(dsc.InvalidParameter, "record.Encode",
			"value of type %T has binary size %d, layout requires %d", v, size, l.Size)
	}
	buf := bytes.NewBuffer(make([]byte, 0, l.Size))
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		return nil, dsc.Errorf(dsc.InvalidParameter, "record.Encode", "%v", err)
	}
	return Record(buf.Bytes()), nil
}

// Decode reads record r into out, which has to be a pointer to a fixed-size
// value of the layout's size.
func (l Layout) Decode(r Record, out any) error {
	if err := l.check("record.Decode", r); err != nil {
		return err
	}
	if size := binary.Size(out); size != l.Size {
		return dsc.Errorf(dsc.InvalidParameter, "record.Decode",
			"target of type %T has binary size %d, layout requires %d", out, size, l.Size)
	}
	if err := binary.Read(bytes.NewReader(r), binary.LittleEndian, out); err != nil {
		return dsc.Errorf(dsc.InvalidParameter, "record.Decode", "%v", err)
	}
	return nil
}

// Copy returns a copy of r, which has to be of the layout's size.
func (l Layout) Copy(r Record) (Record, error) {
	if err := l.check("record.Copy", r); err != nil {
		return nil, err
	}
	return bytes.Clone(r), nil
}

func (l Layout) check(op string, r Record) error {
	if l.Size <= 0 {
		return dsc.Errorf(dsc.InvalidParameter, op, "layout has invalid size %d", l.Size)
	}
	if len(r) != l.Size {
		return dsc.Errorf(dsc.InvalidParameter, op,
			"record has %d bytes, layout requires %d", len(r), l.Size)
	}
	return nil
}
