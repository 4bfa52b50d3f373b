/*
Package containers offers generic container types with the semantics of
classic standard-library containers: a dynamic array, an ordered map and a
stack.

# Containers

The sub-packages implement

	vector   a contiguous, reallocating array with capacity doubling
	bstmap   an ordered key/value map on top of an unbalanced binary search tree
	stack    a LIFO adapter on top of a vector

together with the plumbing they are built from:

	pair      an ordered 2-tuple, used as the map's element type
	iterator  iterator abstractions, a reverse-iterator adapter and algorithms
	alloc     allocators with explicit allocate/construct/destroy/deallocate

Go slices and maps already cover most everyday needs. These containers are for
clients which need the exact contract of the classic containers: iterators
with well-defined invalidation rules, explicit capacity management, ordered
iteration over keys with a client-provided ordering, and whole-container
lexicographic comparison.

# Memory Model

Every container separates "has memory" from "is initialized". Storage is
requested from an allocator as raw slots; elements are constructed into slots
and destroyed before the storage is handed back. Allocators may fail on any of
these steps, and containers unwind partially completed work before reporting
the error. The default heap allocator never fails except for requests beyond
its maximum size.

Iterators are cheap values. They are not checked for validity: using an
iterator after an operation that invalidated it is a programming error and
behavior is undefined, just as with the classic containers.

None of the containers is safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrLengthExceeded is flagged whenever a requested size or capacity is
// beyond the maximum an allocator is able to address.
const ErrLengthExceeded = ContainerError("length exceeds maximum size")

// ErrOutOfRange is flagged by bounds-checked element access with an invalid
// index.
const ErrOutOfRange = ContainerError("index out of range")

// ErrKeyNotFound is flagged by checked map access with an absent key.
const ErrKeyNotFound = ContainerError("key not found")

// ErrAllocation is flagged whenever an allocator is unable to provide storage
// or to construct an element.
const ErrAllocation = ContainerError("allocation failed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")
