package abxcounts

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

// Checked in this order; the gzip and .Z signatures share a first byte.
var byteCodeSigs = []struct {
	dt  DataType
	sig []byte
}{
	{DataTypeGzip, []byte{0x1f, 0x8b, 0x08}},
	{DataTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{DataTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{DataTypeZ, []byte{0x1f, 0x9d}},
	{DataTypeBZip2, []byte{0x42, 0x5a, 0x68}},
}

// DetectDataType matches the leading bytes of a stream against a set of known
// compression signatures. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(head []byte) DataType {
	for _, known := range byteCodeSigs {
		if bytes.HasPrefix(head, known.sig) {
			return known.dt
		}
	}

	return DataTypeNoCompression
}

// MaybeDecompress peeks at the start of rc and, if it looks compressed, wraps
// it in the matching decompressor. Closing the result closes rc.
func MaybeDecompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)

	// A short file is fine: Peek returns what it has along with io.EOF.
	head, peekErr := br.Peek(6)
	if peekErr != nil && peekErr != io.EOF {
		return nil, peekErr
	}

	var r io.Reader
	var err error
	switch DetectDataType(head) {
	case DataTypeGzip:
		r, err = gzip.NewReader(br)
	case DataTypeZip:
		zr := zipstream.NewReader(br)
		// Only the first member of an archive is read.
		if _, err = zr.Next(); err == nil {
			r = zr
		}
	case DataTypeBZip2:
		r = bzip2.NewReader(br)
	case DataTypeXZ:
		r, err = xz.NewReader(br, 0)
	case DataTypeZ:
		err = fmt.Errorf("Unix compress (.Z) input is not supported; decompress it first")
	default:
		r = br
	}
	if err != nil {
		return nil, err
	}

	return &readCloser{Reader: r, closer: rc}, nil
}

// readCloser pairs a (possibly decompressing) reader with the underlying
// source that needs closing.
type readCloser struct {
	io.Reader
	closer io.Closer
}

func (c *readCloser) Close() error {
	if rc, ok := c.Reader.(io.Closer); ok {
		rc.Close()
	}
	return c.closer.Close()
}
