// Package breaker holds escape hatches around Go's type and mutability rules.
//
// Every function here trusts the caller completely. Nothing is validated:
// not size, not alignment, not whether anyone else is reading or writing the
// same memory. Misuse is memory corruption, not an error value. Call sites
// should carry a "// SAFETY:" comment saying why the use is sound.
//
// Never hand these functions memory the compiler placed in a read-only
// segment (string literals, constant data). Writing through the result
// faults the process.
package breaker

import "unsafe"

// Const is a read-only reference to a T. It only offers reads; the way out
// is ForceMut.
type Const[T any] struct {
	p *T
}

// ConstOf wraps p as a read-only reference. p may be nil.
func ConstOf[T any](p *T) Const[T] {
	return Const[T]{p: p}
}

// Load returns a copy of the referenced value.
func (c Const[T]) Load() T {
	return *c.p
}

// Addr returns the address the reference points at.
func (c Const[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(c.p))
}

// IsNil reports whether the reference points nowhere.
func (c Const[T]) IsNil() bool {
	return c.p == nil
}

// ForceMut returns a writable pointer to the value behind c. The result has
// the same address as c; nothing is copied.
//
// The caller must guarantee no other reader or writer uses that memory while
// the result is in use, and that the memory is not in a read-only segment.
func ForceMut[T any](c Const[T]) *T {
	return (*T)(unsafe.Pointer(c.p))
}

// ForceConvert reinterprets p as a pointer to B at the same address. B is
// named at the call site, A is inferred:
//
//	r := breaker.ForceConvert[rune](&u) // u is a uint32
//
// No byte is copied or converted. If B is larger than A, needs stricter
// alignment, or holds pointers where A holds plain data, dereferencing the
// result is undefined.
func ForceConvert[B, A any](p *A) *B {
	return (*B)(unsafe.Pointer(p))
}

// ConvertConst is ForceConvert for read-only references.
func ConvertConst[B, A any](c Const[A]) Const[B] {
	return Const[B]{p: (*B)(unsafe.Pointer(c.p))}
}

// Addr returns p as an integer address.
func Addr[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}
