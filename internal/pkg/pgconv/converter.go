package pgconv

import (
	"math"

	"github.com/jackc/pgx/v5/pgtype"
)

// TextOr returns the column value, or def when it is NULL.
func TextOr(pt pgtype.Text, def string) string {
	if !pt.Valid {
		return def
	}
	return pt.String
}

// Uint8FromInt2 narrows a SMALLINT column, clamping values outside 0..255.
func Uint8FromInt2(v int16) uint8 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}

// Int2FromInt narrows to a SMALLINT column, clamping to its range.
func Int2FromInt(v int) int16 {
	switch {
	case v < math.MinInt16:
		return math.MinInt16
	case v > math.MaxInt16:
		return math.MaxInt16
	}
	return int16(v)
}
