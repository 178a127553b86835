package hashing

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/snwfog/linkedqueue/pkg/identify"
	"github.com/snwfog/linkedqueue/pkg/util"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Key returns a 64 bit key for v. Values implementing identify.Identify use
// their own identity; builtin scalars, strings, byte slices and fmt.Stringers
// are hashed with siphash. Key panics on nil and on any other type.
func Key(v any) uint64 {
	if util.IsNil(v) {
		panic("v cannot be nil")
	}

	switch x := v.(type) {
	case identify.Identify:
		return x.Identity()
	case string:
		return String(x)
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x)
	case bool:
		if x {
			return Uint64(1)
		}
		return Uint64(0)
	case int:
		return Uint64(uint64(x))
	case int8:
		return Uint64(uint64(x))
	case int16:
		return Uint64(uint64(x))
	case int32:
		return Uint64(uint64(x))
	case int64:
		return Uint64(uint64(x))
	case uint:
		return Uint64(uint64(x))
	case uint8:
		return Uint64(uint64(x))
	case uint16:
		return Uint64(uint64(x))
	case uint32:
		return Uint64(uint64(x))
	case uint64:
		return Uint64(x)
	case uintptr:
		return Uint64(uint64(x))
	case float32:
		if x == 0 {
			x = 0 // -0 == +0
		}
		return Uint64(uint64(math.Float32bits(x)))
	case float64:
		if x == 0 {
			x = 0
		}
		return Uint64(math.Float64bits(x))
	case fmt.Stringer:
		return String(x.String())
	}

	panic(errors.Errorf("unsupported v type %T", v))
}

// String hashes s without copying it.
func String(s string) uint64 {
	if len(s) == 0 {
		return siphash.Hash(sipHashKey1, sipHashKey2, nil)
	}

	return siphash.Hash(sipHashKey1, sipHashKey2, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Uint64 hashes the little endian encoding of n, so the result does not
// depend on the host byte order.
func Uint64(n uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
}
