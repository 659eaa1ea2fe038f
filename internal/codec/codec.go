// Package codec serializes compiled scenes.
//
// CBOR output uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same scene always produces identical bytes. JSON and YAML are offered
// for inspection. Any format can be wrapped in a zstd frame.
package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/vk/scenec/internal/scene"
)

// Format is an output encoding.
type Format string

const (
	FormatCBOR Format = "cbor"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty name means CBOR.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatCBOR, nil
	case FormatCBOR, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be 'cbor', 'json' or 'yaml'", s)
	}
}

// Options selects the encoding.
type Options struct {
	Format   Format
	Compress bool
}

// Extension returns the output file extension for opts.
func (o Options) Extension() string {
	if o.Compress {
		return ".guic.zst"
	}
	return ".guic"
}

// Result describes what Encode wrote.
type Result struct {
	Bytes  int
	Digest string // hex BLAKE3-256 of the written bytes
}

var (
	encMode     cbor.EncMode
	decMode     cbor.DecMode
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes s without compression.
func Marshal(s *scene.Scene, f Format) ([]byte, error) {
	switch f {
	case FormatCBOR, "":
		return encMode.Marshal(s)
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", f)
	}
}

// Unmarshal decodes uncompressed data in format f.
func Unmarshal(data []byte, f Format) (*scene.Scene, error) {
	s := &scene.Scene{}
	var err error
	switch f {
	case FormatCBOR, "":
		err = decMode.Unmarshal(data, s)
	case FormatJSON:
		err = json.Unmarshal(data, s)
	case FormatYAML:
		err = yaml.Unmarshal(data, s)
	default:
		err = fmt.Errorf("unknown output format %q", f)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes s to w.
func Encode(w io.Writer, s *scene.Scene, opts Options) (Result, error) {
	data, err := Marshal(s, opts.Format)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode scene %s: %w", s.Path, err)
	}
	if opts.Compress {
		data = zstdEncoder.EncodeAll(data, nil)
	}

	sum := blake3.Sum256(data)
	n, err := w.Write(data)
	if err != nil {
		return Result{}, fmt.Errorf("failed to write scene %s: %w", s.Path, err)
	}
	return Result{Bytes: n, Digest: hex.EncodeToString(sum[:])}, nil
}

// Decode reads a scene written by Encode with the same options.
func Decode(r io.Reader, opts Options) (*scene.Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if opts.Compress {
		data, err = zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
	}
	return Unmarshal(data, opts.Format)
}
