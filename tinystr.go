// Package tinystr provides a fixed-capacity UTF-8 string stored inline
// in a byte array, with no heap allocation and no separate length field.
//
// The current length is encoded inside the buffer itself: a 0x00
// sentinel byte marks the end of the text, and a buffer with no
// sentinel is completely full. Length is recovered by scanning for the
// first zero byte. Two invariants follow from this encoding:
//
//   - the bytes before the sentinel are always valid UTF-8
//   - the stored text can never contain U+0000, because its encoding
//     collides with the sentinel byte
//
// The NUL restriction is a property of the design, not a bug. Text
// appended with an embedded NUL logically ends at that NUL.
//
// A String is a plain value. Assigning it copies the whole buffer and
// the copies are fully independent afterwards. Do not compare values
// with ==: the bytes past the sentinel are don't-care and may differ
// between equal strings. Use Equal.
package tinystr

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/rawbytedev/tinystr/internal/rawbuf"
)

// Array is the set of backing array types a String can use. The array
// length is the string's capacity, fixed at the type level, so two
// strings of different capacities are different types.
type Array interface {
	~[0]byte | ~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte |
		~[6]byte | ~[7]byte | ~[8]byte | ~[9]byte | ~[10]byte | ~[11]byte |
		~[12]byte | ~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte | ~[17]byte |
		~[18]byte | ~[19]byte | ~[20]byte | ~[21]byte | ~[22]byte | ~[23]byte |
		~[24]byte | ~[25]byte | ~[26]byte | ~[27]byte | ~[28]byte | ~[29]byte |
		~[30]byte | ~[31]byte | ~[32]byte | ~[48]byte | ~[64]byte | ~[96]byte |
		~[128]byte | ~[192]byte | ~[256]byte | ~[384]byte | ~[512]byte |
		~[768]byte | ~[1024]byte | ~[2048]byte | ~[4096]byte
}

// String is a fixed-capacity UTF-8 string backed by the inline array A.
//
//	var tag tinystr.String[[16]byte]
//	tag.Append("release")
type String[A Array] struct {
	buf A
}

// New returns an empty String. The whole buffer is zeroed, so the
// sentinel invariant holds immediately.
func New[A Array]() String[A] {
	var s String[A]
	return s
}

// From builds a String holding s. Fails with a *CapacityError carrying
// s when it does not fit.
func From[A Array](s string) (String[A], error) {
	v := New[A]()
	if err := v.TryAppend(s); err != nil {
		return String[A]{}, err
	}
	return v, nil
}

// FromRaw builds a String directly from a pre-filled buffer. The whole
// array must be valid UTF-8; otherwise FromRaw fails with
// ErrInvalidUTF8 and the buffer is discarded.
//
// A buffer containing an early 0x00 byte is accepted: the value's
// length is then the index of that byte, not the full capacity.
func FromRaw[A Array](buf A) (String[A], error) {
	if !utf8.Valid(rawbuf.Of(&buf, rawbuf.Cap[A]())) {
		return String[A]{}, ErrInvalidUTF8
	}
	return String[A]{buf: buf}, nil
}

// Cap returns the capacity of String[A] without needing a value.
func Cap[A Array]() int {
	return rawbuf.Cap[A]()
}

// Len returns the current length in bytes. O(capacity): scans for the
// first zero byte; no sentinel means the buffer is full.
func (s *String[A]) Len() int {
	n := bytes.IndexByte(s.raw(), 0)
	if n < 0 {
		return s.Cap()
	}
	return n
}

// Cap returns the fixed capacity in bytes.
func (s *String[A]) Cap() int {
	return rawbuf.Cap[A]()
}

// IsEmpty reports whether the string holds no text.
func (s *String[A]) IsEmpty() bool {
	raw := s.raw()
	return len(raw) == 0 || raw[0] == 0
}

// IsFull reports whether no more bytes can be appended.
func (s *String[A]) IsFull() bool {
	return s.Len() == s.Cap()
}

// Clear makes the string empty. The tail bytes are left as-is; they
// become unreachable once the sentinel moves to index 0.
func (s *String[A]) Clear() {
	raw := s.raw()
	if len(raw) > 0 {
		raw[0] = 0
	}
}

// TryAppend adds t to the end of the string.
//
// Fails with a *CapacityError carrying t when the remaining room is too
// small, in which case the string is left exactly as it was. On success
// the sentinel is re-established after the copied bytes, unless the
// buffer became completely full.
func (s *String[A]) TryAppend(t string) error {
	n := s.Len()
	avail := s.Cap() - n
	if len(t) > avail {
		return &CapacityError{Input: t}
	}
	raw := s.raw()
	copy(raw[n:], t)
	if len(t) < avail {
		raw[n+len(t)] = 0
	}
	return nil
}

// Append is TryAppend for call sites that have already proven the text
// fits. Panics on overflow.
func (s *String[A]) Append(t string) {
	if err := s.TryAppend(t); err != nil {
		panic("tinystr: " + err.Error())
	}
}

// View returns the stored text as a string aliasing the buffer, without
// copying or re-validating. The view is only valid until the next
// mutation of s; callers that keep the text should use String instead.
func (s *String[A]) View() string {
	return rawbuf.View(&s.buf, s.Len())
}

// Bytes returns the stored text as a mutable byte slice aliasing the
// buffer. In-place edits are allowed but the caller must keep the
// prefix valid UTF-8 and free of zero bytes; the type cannot re-check
// arbitrary edits.
func (s *String[A]) Bytes() []byte {
	return s.raw()[:s.Len()]
}

// String returns a copy of the stored text. Implements fmt.Stringer.
func (s *String[A]) String() string {
	return string(s.Bytes())
}

// GoString implements fmt.GoStringer, rendering the text quoted.
func (s *String[A]) GoString() string {
	return "tinystr.String(" + strconv.Quote(s.View()) + ")"
}

// Equal reports whether both strings hold the same text. Capacity tail
// bytes are ignored, which is why Equal and not == is the comparison
// contract for this type.
func (s *String[A]) Equal(o *String[A]) bool {
	return s.View() == o.View()
}

// EqualString reports whether the stored text equals t.
func (s *String[A]) EqualString(t string) bool {
	return s.View() == t
}

// Clone returns an independent copy. Plain assignment does the same
// thing; Clone exists for call sites that want the copy to be explicit.
func (s *String[A]) Clone() String[A] {
	return *s
}

// CopyFrom replaces the contents of s with the text of o. Guaranteed to
// fit, the capacities being equal by type.
func (s *String[A]) CopyFrom(o *String[A]) {
	if s == o {
		return
	}
	s.Clear()
	s.Append(o.View())
}

func (s *String[A]) raw() []byte {
	return rawbuf.Of(&s.buf, rawbuf.Cap[A]())
}
