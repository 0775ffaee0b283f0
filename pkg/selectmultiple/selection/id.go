package selection

import (
	"fmt"
	"math"
	"reflect"
)

// ID identifies an item for selection lookups. The zero ID is "missing":
// it never equals any other ID, not even another missing one.
type ID struct {
	value any
	valid bool
}

// NewID wraps v. A nil v produces a missing ID.
func NewID(v any) ID {
	if v == nil {
		return ID{}
	}
	return ID{value: v, valid: true}
}

// Valid reports whether the ID carries a value.
func (id ID) Valid() bool {
	return id.valid
}

// Value returns the wrapped value, or nil for a missing ID.
func (id ID) Value() any {
	return id.value
}

// Equal compares by value. Numbers match across Go numeric types, so an
// id decoded as int64 equals the same int literal. Values that can be
// compared use ==, anything else (slices, maps, structs holding them)
// falls back to deep equality.
func (id ID) Equal(other ID) bool {
	if !id.valid || !other.valid {
		return false
	}

	if a, ok := canonicalNumber(id.value); ok {
		b, ok := canonicalNumber(other.value)
		return ok && a == b
	}

	if reflect.TypeOf(id.value) != reflect.TypeOf(other.value) {
		return false
	}
	if reflect.ValueOf(id.value).Comparable() && reflect.ValueOf(other.value).Comparable() {
		return id.value == other.value
	}
	return reflect.DeepEqual(id.value, other.value)
}

// canonicalNumber maps every numeric kind onto int64, uint64 (above
// MaxInt64) or float64 (non-integral), so equal numbers compare equal.
func canonicalNumber(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return u, true
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), true
		}
		return f, true
	}
	return nil, false
}

// Key renders the ID as a string usable for cache keys. IDs that are Equal
// by number share a key.
func (id ID) Key() string {
	if !id.valid {
		return "<nil>"
	}
	if n, ok := canonicalNumber(id.value); ok {
		return fmt.Sprintf("number:%v", n)
	}
	return fmt.Sprintf("%T:%v", id.value, id.value)
}

func (id ID) String() string {
	if !id.valid {
		return "<nil>"
	}
	return fmt.Sprint(id.value)
}
