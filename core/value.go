package core

import (
	"fmt"
	"strconv"
	"time"
)

// AppendValue appends the textual representation of v to dst and returns
// the extended buffer.
//
// Scalars are written without going through fmt. Errors, fmt.Stringer
// implementations and every other type are rendered with fmt.Append, which
// also turns a panicking String or Error method into "%!v(PANIC=...)" text.
func AppendValue(dst []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(dst, val...)
	case []byte:
		return append(dst, val...)
	case bool:
		return strconv.AppendBool(dst, val)
	case int:
		return strconv.AppendInt(dst, int64(val), 10)
	case int8:
		return strconv.AppendInt(dst, int64(val), 10)
	case int16:
		return strconv.AppendInt(dst, int64(val), 10)
	case int32:
		return strconv.AppendInt(dst, int64(val), 10)
	case int64:
		return strconv.AppendInt(dst, val, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(dst, val, 10)
	case float32:
		return strconv.AppendFloat(dst, float64(val), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, val, 'g', -1, 64)
	case time.Time:
		return val.AppendFormat(dst, time.RFC3339Nano)
	case time.Duration:
		return append(dst, val.String()...)
	case nil:
		return append(dst, "<nil>"...)
	default:
		return fmt.Append(dst, val)
	}
}

// AppendPair appends " key=value" to dst. Bridges from key/value logging
// front ends use it to flatten attributes into the message text.
func AppendPair(dst []byte, key string, v any) []byte {
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	return AppendValue(dst, v)
}
