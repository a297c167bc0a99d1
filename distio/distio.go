// SPDX-License-Identifier: MIT
// Package distio reads and writes distance matrices in a small binary format
// so harness runs can persist inputs and kernel outputs for later comparison.
//
// Layout (little-endian):
//
//	offset size  field
//	0      4     magic "TRMX"
//	4      1     version (1)
//	5      1     flags (bit 0: payload is a zstd stream)
//	6      2     reserved (0)
//	8      4     n (uint32)
//	12     4·n²  row-major float32 cells (raw or zstd-compressed)
//
// Cells round-trip bit-exactly, including +Inf, -0 and NaN payloads.
package distio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/tropical/matrix"
)

const (
	// Version is the only format version this package writes and reads.
	Version byte = 1
	// MaxOrder bounds n on write and read; a corrupt header cannot trigger a huge allocation.
	MaxOrder = 1 << 15

	headerSize    = 12
	flagZstd byte = 1 << 0
	chunkCells    = 4096
)

var magic = [4]byte{'T', 'R', 'M', 'X'}

var (
	// ErrBadMagic is returned when the stream does not start with "TRMX".
	ErrBadMagic = errors.New("distio: bad magic")
	// ErrVersion is returned for an unknown format version or flag bits.
	ErrVersion = errors.New("distio: unsupported version")
	// ErrTruncated is returned when the stream ends before n² cells.
	ErrTruncated = errors.New("distio: truncated stream")
	// ErrTooLarge is returned for n > MaxOrder, by Write and by Read.
	ErrTooLarge = errors.New("distio: matrix too large")
)

// Option configures Write.
type Option func(*writeConfig)

type writeConfig struct {
	compress bool
	level    zstd.EncoderLevel
}

// WithCompression compresses the payload with zstd at the given zstd level
// (1-22, mapped with zstd.EncoderLevelFromZstd); level <= 0 uses the default.
func WithCompression(level int) Option {
	return func(c *writeConfig) {
		c.compress = true
		c.level = zstd.SpeedDefault
		if level > 0 {
			c.level = zstd.EncoderLevelFromZstd(level)
		}
	}
}

// Write serializes m to w. Matrices larger than MaxOrder are rejected with
// ErrTooLarge before anything is written.
func Write(w io.Writer, m *matrix.Dense, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("distio.Write: %w", err)
	}
	if err := checkOrder(m.N()); err != nil {
		return fmt.Errorf("distio.Write: %w", err)
	}
	var cfg writeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var hdr [headerSize]byte
	copy(hdr[0:4], magic[:])
	hdr[4] = Version
	if cfg.compress {
		hdr[5] = flagZstd
	}
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(m.N()))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("distio.Write: header: %w", err)
	}

	if !cfg.compress {
		bw := bufio.NewWriter(w)
		if err := writeCells(bw, m.Data()); err != nil {
			return err
		}

		return bw.Flush()
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(cfg.level))
	if err != nil {
		return fmt.Errorf("distio.Write: zstd: %w", err)
	}
	if err = writeCells(enc, m.Data()); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}

// Read decodes one matrix from r. Extra bytes after the payload are not consumed
// for raw streams and are ignored for compressed ones.
func Read(r io.Reader) (*matrix.Dense, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("distio.Read: header: %w", asTruncated(err))
	}
	if [4]byte(hdr[0:4]) != magic {
		return nil, fmt.Errorf("distio.Read: %w", ErrBadMagic)
	}
	if hdr[4] != Version || hdr[5]&^flagZstd != 0 {
		return nil, fmt.Errorf("distio.Read: version=%d flags=%#x: %w", hdr[4], hdr[5], ErrVersion)
	}
	n := binary.LittleEndian.Uint32(hdr[8:12])
	if err := checkOrder(int(n)); err != nil {
		return nil, fmt.Errorf("distio.Read: %w", err)
	}

	m, err := matrix.NewDense(int(n))
	if err != nil {
		return nil, fmt.Errorf("distio.Read: %w", err)
	}

	src := r
	if hdr[5]&flagZstd != 0 {
		dec, derr := zstd.NewReader(r)
		if derr != nil {
			return nil, fmt.Errorf("distio.Read: zstd: %w", derr)
		}
		defer dec.Close()
		src = dec
	}
	if err = readCells(src, m.Data()); err != nil {
		return nil, err
	}

	return m, nil
}

// checkOrder rejects orders Read would refuse, so Write never produces an
// unreadable stream.
func checkOrder(n int) error {
	if n > MaxOrder {
		return fmt.Errorf("n=%d: %w", n, ErrTooLarge)
	}

	return nil
}

func writeCells(w io.Writer, cells []float32) error {
	buf := make([]byte, 4*min(len(cells), chunkCells))
	for len(cells) > 0 {
		c := min(len(cells), chunkCells)
		for i, v := range cells[:c] {
			binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
		}
		if _, err := w.Write(buf[:4*c]); err != nil {
			return fmt.Errorf("distio.Write: payload: %w", err)
		}
		cells = cells[c:]
	}

	return nil
}

func readCells(r io.Reader, cells []float32) error {
	buf := make([]byte, 4*min(len(cells), chunkCells))
	for len(cells) > 0 {
		c := min(len(cells), chunkCells)
		if _, err := io.ReadFull(r, buf[:4*c]); err != nil {
			return fmt.Errorf("distio.Read: payload: %w", asTruncated(err))
		}
		for i := range cells[:c] {
			cells[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
		}
		cells = cells[c:]
	}

	return nil
}

// asTruncated maps short-read errors to ErrTruncated and keeps the rest.
func asTruncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}

	return err
}
