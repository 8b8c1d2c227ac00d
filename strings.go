package breaker

import (
	"reflect"
	"unsafe"
)

// StringBytes returns the backing array of s as a writable slice. Writes
// through it change s and every string sharing that storage.
//
// s must live on the heap (built at runtime). String literals sit in
// read-only memory and writing to them crashes the program.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString returns a string aliasing b. Changing b afterwards changes the
// string too.
func BytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ForceMutValue returns a settable Value at the same address as v. It is
// the reflect counterpart of ForceMut, mainly for unexported fields.
// v must be addressable; UnsafeAddr panics otherwise.
func ForceMutValue(v reflect.Value) reflect.Value {
	if v.CanSet() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
