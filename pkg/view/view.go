// Package view reinterprets slices in place: the same backing array seen as
// a different element type. No copy, no alignment check, no bounds check.
package view

import (
	"reflect"
	"unsafe"
)

// Slice views s as a []B over the same memory. The length is the number of
// whole B values that fit in len(s)*sizeof(A) bytes; leftover bytes are not
// reachable through the result.
func Slice[B, A any](s []A) []B {
	var a A
	var b B
	sb := unsafe.Sizeof(b)
	if len(s) == 0 || sb == 0 {
		return nil
	}
	n := uintptr(len(s)) * unsafe.Sizeof(a) / sb
	return unsafe.Slice((*B)(unsafe.Pointer(unsafe.SliceData(s))), int(n))
}

// Bytes views s as raw bytes.
func Bytes[T any](s []T) []byte {
	return Slice[byte](s)
}

// As views the first n*sizeof(T) bytes of b as n values of T.
// b must hold at least that many bytes.
func As[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

var fixedSizes = [...]int{
	reflect.Bool:    1,
	reflect.Int8:    1,
	reflect.Uint8:   1,
	reflect.Int16:   2,
	reflect.Uint16:  2,
	reflect.Int32:   4,
	reflect.Uint32:  4,
	reflect.Float32: 4,
	reflect.Int64:   8,
	reflect.Uint64:  8,
	reflect.Float64: 8,
}

// FixedSize returns the byte width of a fixed-size primitive kind, -1 for
// anything else.
func FixedSize(k reflect.Kind) int {
	if int(k) < len(fixedSizes) && fixedSizes[k] > 0 {
		return fixedSizes[k]
	}
	return -1
}

// IsFixedKind reports whether k is a fixed-size primitive kind.
func IsFixedKind(k reflect.Kind) bool {
	return FixedSize(k) > 0
}

// AliasKind sets the slice dst to n elements of kind k aliasing b. A
// negative n takes as many whole elements as b holds. Kinds that are not
// fixed-size leave dst untouched.
func AliasKind(dst reflect.Value, b []byte, k reflect.Kind, n int) {
	if !IsFixedKind(k) {
		return
	}
	if n < 0 {
		n = len(b) / FixedSize(k)
	}
	var val any
	switch k {
	case reflect.Bool:
		val = As[bool](b, n)
	case reflect.Int8:
		val = As[int8](b, n)
	case reflect.Uint8:
		val = As[uint8](b, n)
	case reflect.Int16:
		val = As[int16](b, n)
	case reflect.Uint16:
		val = As[uint16](b, n)
	case reflect.Int32:
		val = As[int32](b, n)
	case reflect.Uint32:
		val = As[uint32](b, n)
	case reflect.Int64:
		val = As[int64](b, n)
	case reflect.Uint64:
		val = As[uint64](b, n)
	case reflect.Float32:
		val = As[float32](b, n)
	case reflect.Float64:
		val = As[float64](b, n)
	}
	dst.Set(reflect.ValueOf(val))
}
