package codec

import "github.com/arloliu/ordpack/errs"

// Marker bit patterns identifying each category in the high bits of the
// header byte. The low bits carry value bits or the length nibble, so a
// decoded header must be matched against every low-nibble variant of a
// marker, not just the canonical pattern.
const (
	negMultiMarker byte = 0x10 // 0001llll
	neg2ByteMarker byte = 0x20 // 001xxxxx
	neg1ByteMarker byte = 0x40 // 01xxxxxx
	pos1ByteMarker byte = 0x80 // 10xxxxxx
	pos2ByteMarker byte = 0xC0 // 110xxxxx
	posMultiMarker byte = 0xE0 // 1110llll
)

// Category range boundaries.
const (
	neg1ByteMin int64  = -(1 << 6)                // -64, smallest 1-byte negative
	neg2ByteMin int64  = -(1 << 13) + neg1ByteMin // -8256, smallest 2-byte negative
	pos1ByteMax uint64 = 1<<6 - 1                 // 63, largest 1-byte positive
	pos2ByteMax uint64 = 1<<13 + pos1ByteMax      // 8255, largest 2-byte positive
)

// MaxSize is the maximum encoded size of a single integer in bytes: one
// header byte plus up to eight payload bytes.
const MaxSize = 9

// Category identifies which of the seven wire categories an encoded integer
// belongs to. Categories partition the full int64/uint64 range by sign and
// magnitude; they are derived from the header byte and never stored
// separately.
type Category uint8

const (
	NegMulti Category = 0x1 // NegMulti represents multi-byte negatives below -8256.
	Neg2Byte Category = 0x2 // Neg2Byte represents negatives in [-8256, -65].
	Neg1Byte Category = 0x3 // Neg1Byte represents negatives in [-64, -1].
	Pos1Byte Category = 0x4 // Pos1Byte represents values in [0, 63].
	Pos2Byte Category = 0x5 // Pos2Byte represents values in [64, 8255].
	PosMulti Category = 0x6 // PosMulti represents multi-byte positives above 8255.
)

func (c Category) String() string {
	switch c {
	case NegMulti:
		return "NegMulti"
	case Neg2Byte:
		return "Neg2Byte"
	case Neg1Byte:
		return "Neg1Byte"
	case Pos1Byte:
		return "Pos1Byte"
	case Pos2Byte:
		return "Pos2Byte"
	case PosMulti:
		return "PosMulti"
	default:
		return "Unknown"
	}
}

// Categorize classifies a header byte into its wire category.
//
// The top nibble alone determines the category: the 1-byte categories own four
// top-nibble values each and the 2-byte categories own two, because their
// low-order header bits carry value bits.
//
// Returns:
//   - Category: The category the header byte belongs to
//   - error: errs.ErrInvalidMarker if the header falls in a reserved range
//     (0x00-0x0F or 0xF0-0xFF)
func Categorize(header byte) (Category, error) {
	switch header >> 4 {
	case 0x1:
		return NegMulti, nil
	case 0x2, 0x3:
		return Neg2Byte, nil
	case 0x4, 0x5, 0x6, 0x7:
		return Neg1Byte, nil
	case 0x8, 0x9, 0xA, 0xB:
		return Pos1Byte, nil
	case 0xC, 0xD:
		return Pos2Byte, nil
	case 0xE:
		return PosMulti, nil
	default: // 0x0 and 0xF are reserved
		return 0, errs.ErrInvalidMarker
	}
}

// Size returns the total encoded size in bytes (header included) implied by a
// header byte, without inspecting any payload bytes.
//
// For multi-byte categories the size comes from the length nibble; for the
// other categories it is fixed. Callers that scan concatenated encodings can
// use this to frame entries without decoding them.
//
// Returns:
//   - int: Total encoded size in bytes (1-9 for well-formed headers)
//   - error: errs.ErrInvalidMarker if the header falls in a reserved range
func Size(header byte) (int, error) {
	category, err := Categorize(header)
	if err != nil {
		return 0, err
	}

	switch category {
	case Neg1Byte, Pos1Byte:
		return 1, nil
	case Neg2Byte, Pos2Byte:
		return 2, nil
	case PosMulti:
		return 1 + int(header&0x0F), nil
	default: // NegMulti: nibble holds the leading all-ones byte count
		n := 8 - int(header&0x0F)
		if n < 0 {
			n = 0
		}

		return 1 + n, nil
	}
}
