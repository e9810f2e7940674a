// Package array provides the immutable, fixed-length homogeneous arrays that
// the value source produces and the frame package stores.
//
// Every array has a dtype.DType and a Go element type chosen by kind:
//
//	int8 … int64          int8 … int64
//	uint8 … uint64        uint8 … uint64
//	float16               float16.Float16 (github.com/x448/float16)
//	float32, float64      float32, float64
//	complex64, complex128 complex64, complex128
//	bool                  bool
//	<U4                   string
//	|S4                   []byte
//	datetime64[u]         dtype.Datetime64
//	timedelta64[u]        dtype.Timedelta64
//	object                any (nil, bool, int64, float64, string, Tuple, …)
//
// Arrays expose no mutators; Values returns a copy.
package array
