package rawbuf

import (
	"reflect"
	"unsafe"
)

// Cap returns the element count of the backing array type A.
func Cap[A any]() int {
	return reflect.TypeOf((*A)(nil)).Elem().Len()
}

// Of aliases the storage of *p as a byte slice of length n without
// copying. n must not exceed the size of A.
func Of[A any](p *A, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// View aliases the first n bytes of *p as a string without copying.
// The caller must guarantee those bytes are valid UTF-8 and must not
// mutate them while the string is live.
func View[A any](p *A, n int) string {
	return unsafe.String((*byte)(unsafe.Pointer(p)), n)
}
