// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import (
	"strings"
	"unsafe"
)

// Str is a mutable byte string stored in an engine.
type Str[S any, B Backend[byte, S]] struct {
	vec Engine[byte, S, B]
}

// String is a Str on the heap backend.
type String = Str[Heap[byte], *Heap[byte]]

// FlatString is a Str on the flat backend.
type FlatString = Str[Flat[byte, NoHeader], *Flat[byte, NoHeader]]

// SmallString keeps up to len(A) bytes inline.
type SmallString[A Inline[byte]] = Str[Small[byte, A], *Small[byte, A]]

func bytesOf(s string) []byte { return unsafe.Slice(unsafe.StringData(s), len(s)) }

// view returns the contents as a string sharing the buffer.
func (s *Str[S, B]) view() string {
	b := s.vec.Slice()
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func (s *Str[S, B]) Len() int      { return s.vec.Len() }
func (s *Str[S, B]) Cap() int      { return s.vec.Cap() }
func (s *Str[S, B]) IsEmpty() bool { return s.vec.IsEmpty() }
func (s *Str[S, B]) Clear()        { s.vec.Clear() }
func (s *Str[S, B]) Release()      { s.vec.Release() }

// Storage returns the backend.
func (s *Str[S, B]) Storage() B { return s.vec.Storage() }

// SetString replaces the contents with str.
func (s *Str[S, B]) SetString(str string) { s.vec.ResizeRange(bytesOf(str)) }

// Append appends str.
func (s *Str[S, B]) Append(str string) { s.vec.Insert(s.vec.Len(), bytesOf(str)...) }

// AppendByte appends c.
func (s *Str[S, B]) AppendByte(c byte) { s.vec.Push(c) }

// String returns a copy of the contents.
func (s *Str[S, B]) String() string { return strings.Clone(s.view()) }

// Bytes returns the contents. The slice aliases s.
func (s *Str[S, B]) Bytes() []byte { return s.vec.Slice() }

// CString returns a pointer to the contents followed by a NUL byte.
// The pointer is valid until s is next modified.
//
// Spare capacity is always zero, so reserving one byte past Len is enough
// to terminate the string.
func (s *Str[S, B]) CString() *byte {
	s.vec.Reserve(s.vec.Len() + 1)
	return s.vec.Storage().Data()
}

// Compare compares the contents with str lexicographically.
func (s *Str[S, B]) Compare(str string) int { return strings.Compare(s.view(), str) }

// Equal reports whether the contents equal str.
func (s *Str[S, B]) Equal(str string) bool { return s.view() == str }
