// Package compress wraps table streams in the configured compression codec.
package compress

import (
	"io"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Codec names, as written in config and manifests.
const (
	None = "none"
	LZ4  = "lz4"
)

const lz4Ext = ".lz4"

// Ext is the file extension a codec appends after ".csv".
func Ext(codec string) string {
	if codec == LZ4 {
		return lz4Ext
	}

	return ""
}

// CodecFor infers the codec of a file from its name.
func CodecFor(name string) string {
	if strings.HasSuffix(name, lz4Ext) {
		return LZ4
	}

	return None
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns a writer encoding into w. Closing it flushes the codec but
// leaves w open.
func NewWriter(w io.Writer, codec string) (io.WriteCloser, error) {
	switch codec {
	case "", None:
		return nopWriteCloser{w}, nil
	case LZ4:
		zw := lz4.NewWriter(w)
		if err := zw.Apply(lz4.ChecksumOption(true)); err != nil {
			return nil, errors.Wrap(err, "configure lz4 writer")
		}

		return zw, nil
	default:
		return nil, errors.Errorf("unknown compression: %s", codec)
	}
}

// NewReader returns a reader decoding r.
func NewReader(r io.Reader, codec string) (io.Reader, error) {
	switch codec {
	case "", None:
		return r, nil
	case LZ4:
		return lz4.NewReader(r), nil
	default:
		return nil, errors.Errorf("unknown compression: %s", codec)
	}
}
