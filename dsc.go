/*
Package dsc is a small collection of capacity-managed data structures.

Containers

Package dsc itself holds the vocabulary shared by all containers: error kinds,
storage allocation and resize monitoring. The containers live in sub-packages:

	list    growable/shrinkable contiguous sequence, index-addressable
	ring    circular buffer with O(1) push/pop at both ends
	queue   FIFO over a ring buffer
	stack   LIFO over a list
	bst     binary search tree ordered by a caller-supplied comparator
	record  type-erased fixed-width records for all of the above
	algo    textbook sorting and searching on plain slices
	format  console and HTML presentation of container contents

List and ring buffer manage their backing storage explicitly. They do not rely
on append; every capacity change is an explicit allocate-and-copy step with
fixed thresholds:

	Container  |  Start  |  Grow               |  Shrink
	-----------+---------+---------------------+-------------------------------
	list       |  0      |  +8 if free <= 1    |  -8 if free >= 9
	ring       |  8      |  x2 if free <= 1    |  /2 if len <= cap/6, cap > 8

Growth is all-or-nothing: if storage cannot be allocated, the triggering
insert does not happen. Shrinking is best-effort: if it fails, the removal
which triggered it still stands and the failure is reported with
Error.Completed set.

Containers are not safe for concurrent use. Callers must serialize access
to a container instance.

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
package dsc

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Assert panics with msg if condition does not hold. It is reserved for
// internal invariants; conditions a caller can trigger are reported as errors.
func Assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
