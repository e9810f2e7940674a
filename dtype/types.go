package dtype

import (
	"fmt"
	"strconv"
)

// Kind is the category of an element type. It decides which generation
// rule the value source applies.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no generation rule exists for it.
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindComplex
	KindBool
	KindStr
	KindBytes
	KindDatetime
	KindTimedelta
	KindObject
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindInt:       "int",
	KindUint:      "uint",
	KindFloat:     "float",
	KindComplex:   "complex",
	KindBool:      "bool",
	KindStr:       "str",
	KindBytes:     "bytes",
	KindDatetime:  "datetime",
	KindTimedelta: "timedelta",
	KindObject:    "object",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Unit is a datetime/timedelta resolution.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitYear
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMillisecond
	UnitMicrosecond
	UnitNanosecond
)

// Units lists the supported time units from coarsest to finest.
var Units = []Unit{
	UnitYear, UnitMonth, UnitDay,
	UnitHour, UnitMinute, UnitSecond,
	UnitMillisecond, UnitMicrosecond, UnitNanosecond,
}

var unitCodes = [...]string{
	UnitNone:        "",
	UnitYear:        "Y",
	UnitMonth:       "M",
	UnitDay:         "D",
	UnitHour:        "h",
	UnitMinute:      "m",
	UnitSecond:      "s",
	UnitMillisecond: "ms",
	UnitMicrosecond: "us",
	UnitNanosecond:  "ns",
}

var unitNames = [...]string{
	UnitNone:        "",
	UnitYear:        "years",
	UnitMonth:       "months",
	UnitDay:         "days",
	UnitHour:        "hours",
	UnitMinute:      "minutes",
	UnitSecond:      "seconds",
	UnitMillisecond: "milliseconds",
	UnitMicrosecond: "microseconds",
	UnitNanosecond:  "nanoseconds",
}

// Code returns the canonical short code ("Y", "ms", …).
func (u Unit) Code() string {
	if int(u) < len(unitCodes) {
		return unitCodes[u]
	}
	return ""
}

// String implements fmt.Stringer.
func (u Unit) String() string { return u.Code() }

// DType identifies the element type of an array.
//
// Bits is the storage width of numeric kinds (8 … 128). Width is
// the fixed character count of str/bytes kinds. Unit is set only for
// datetime and timedelta kinds.
type DType struct {
	Kind  Kind
	Bits  int
	Width int
	Unit  Unit
}

// labelWidth is the fixed width of generated str/bytes labels.
const labelWidth = 4

// Predefined dtypes.
var (
	Int8       = DType{Kind: KindInt, Bits: 8}
	Int16      = DType{Kind: KindInt, Bits: 16}
	Int32      = DType{Kind: KindInt, Bits: 32}
	Int64      = DType{Kind: KindInt, Bits: 64}
	Uint8      = DType{Kind: KindUint, Bits: 8}
	Uint16     = DType{Kind: KindUint, Bits: 16}
	Uint32     = DType{Kind: KindUint, Bits: 32}
	Uint64     = DType{Kind: KindUint, Bits: 64}
	Float16    = DType{Kind: KindFloat, Bits: 16}
	Float32    = DType{Kind: KindFloat, Bits: 32}
	Float64    = DType{Kind: KindFloat, Bits: 64}
	Complex64  = DType{Kind: KindComplex, Bits: 64}
	Complex128 = DType{Kind: KindComplex, Bits: 128}
	Bool       = DType{Kind: KindBool, Bits: 8}
	Str        = DType{Kind: KindStr, Width: labelWidth}
	Bytes      = DType{Kind: KindBytes, Width: labelWidth}
	Object     = DType{Kind: KindObject}
)

// Datetime returns the datetime64 dtype of unit u.
func Datetime(u Unit) DType { return DType{Kind: KindDatetime, Bits: 64, Unit: u} }

// Timedelta returns the timedelta64 dtype of unit u.
func Timedelta(u Unit) DType { return DType{Kind: KindTimedelta, Bits: 64, Unit: u} }

// IsTemporal reports whether d is a datetime or timedelta dtype.
func (d DType) IsTemporal() bool {
	return d.Kind == KindDatetime || d.Kind == KindTimedelta
}

// String renders the dtype in the familiar array-library notation:
// int64, <U4, |S4, datetime64[D], object, …
func (d DType) String() string {
	switch d.Kind {
	case KindInt, KindUint, KindFloat, KindComplex:
		return d.Kind.String() + strconv.Itoa(d.Bits)
	case KindBool:
		return "bool"
	case KindStr:
		return fmt.Sprintf("<U%d", d.Width)
	case KindBytes:
		return fmt.Sprintf("|S%d", d.Width)
	case KindDatetime:
		return "datetime64[" + d.Unit.Code() + "]"
	case KindTimedelta:
		return "timedelta64[" + d.Unit.Code() + "]"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}
