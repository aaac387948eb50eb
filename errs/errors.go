// Package errs defines the sentinel error values returned by ordpack.
//
// All errors are plain sentinel values created with errors.New, so callers can
// match them with errors.Is even when they are wrapped with additional context
// via fmt.Errorf and the %w verb.
package errs

import "errors"

// Codec errors returned when decoding a single encoded integer.
var (
	// ErrInvalidMarker indicates the header byte of an encoded integer falls in
	// one of the two reserved nibble ranges (0x00-0x0F or 0xF0-0xFF). Buffers
	// produced by the encoders in this module never start with a reserved
	// header; encountering one means the input is corrupted or was produced by
	// an incompatible encoder.
	ErrInvalidMarker = errors.New("invalid marker in header byte")

	// ErrTruncated indicates the buffer is shorter than the length implied by
	// its header byte, i.e. one or more payload bytes are missing.
	ErrTruncated = errors.New("truncated encoded integer")
)

// Block errors returned when parsing an encoded key block.
var (
	// ErrInvalidBlockSize indicates the block is too small to contain a
	// complete block header.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidBlockMagic indicates the block header does not start with the
	// expected magic number.
	ErrInvalidBlockMagic = errors.New("invalid block magic number")

	// ErrInvalidBlockFlag indicates the block header flag byte carries an
	// unknown compression type or non-zero reserved bits.
	ErrInvalidBlockFlag = errors.New("invalid block flag")

	// ErrBlockChecksumMismatch indicates the payload checksum stored in the
	// block header does not match the checksum of the actual payload bytes.
	ErrBlockChecksumMismatch = errors.New("block checksum mismatch")

	// ErrBlockCountMismatch indicates the payload does not contain exactly the
	// number of encoded integers declared in the block header.
	ErrBlockCountMismatch = errors.New("block entry count mismatch")

	// ErrBlockKindMismatch indicates a signed block was given to an unsigned
	// decoder or vice versa.
	ErrBlockKindMismatch = errors.New("block signedness mismatch")
)
