package dtype

import "strconv"

// Constructor is a closed enum of container kinds a DSL may request.
// It carries no behavior; the frame package maps each kind to a builder.
type Constructor uint8

const (
	CtorInvalid Constructor = iota
	CtorTypeBlocks
	CtorFrame
	CtorFrameGO
	CtorIndex
	CtorIndexGO
	CtorIndexHierarchy
	CtorIndexHierarchyGO
	CtorIndexAutoFactory
	CtorIndexYear
	CtorIndexYearGO
	CtorIndexYearMonth
	CtorIndexYearMonthGO
	CtorIndexDate
	CtorIndexDateGO
	CtorIndexHour
	CtorIndexHourGO
	CtorIndexMinute
	CtorIndexMinuteGO
	CtorIndexSecond
	CtorIndexSecondGO
	CtorIndexMillisecond
	CtorIndexMillisecondGO
	CtorIndexMicrosecond
	CtorIndexMicrosecondGO
	CtorIndexNanosecond
	CtorIndexNanosecondGO
)

type ctorFamily uint8

const (
	familyNone ctorFamily = iota
	familyBlocks
	familyFrame
	familyIndex
	familyHierarchy
	familyFactory
)

// ctorInfo holds the fixed traits of one Constructor.
type ctorInfo struct {
	name   string
	family ctorFamily
	static bool
	unit   Unit
}

var ctorTable = [...]ctorInfo{
	CtorInvalid:            {name: "Invalid"},
	CtorTypeBlocks:         {"TypeBlocks", familyBlocks, true, UnitNone},
	CtorFrame:              {"Frame", familyFrame, true, UnitNone},
	CtorFrameGO:            {"FrameGO", familyFrame, false, UnitNone},
	CtorIndex:              {"Index", familyIndex, true, UnitNone},
	CtorIndexGO:            {"IndexGO", familyIndex, false, UnitNone},
	CtorIndexHierarchy:     {"IndexHierarchy", familyHierarchy, true, UnitNone},
	CtorIndexHierarchyGO:   {"IndexHierarchyGO", familyHierarchy, false, UnitNone},
	CtorIndexAutoFactory:   {"IndexAutoConstructorFactory", familyFactory, true, UnitNone},
	CtorIndexYear:          {"IndexYear", familyIndex, true, UnitYear},
	CtorIndexYearGO:        {"IndexYearGO", familyIndex, false, UnitYear},
	CtorIndexYearMonth:     {"IndexYearMonth", familyIndex, true, UnitMonth},
	CtorIndexYearMonthGO:   {"IndexYearMonthGO", familyIndex, false, UnitMonth},
	CtorIndexDate:          {"IndexDate", familyIndex, true, UnitDay},
	CtorIndexDateGO:        {"IndexDateGO", familyIndex, false, UnitDay},
	CtorIndexHour:          {"IndexHour", familyIndex, true, UnitHour},
	CtorIndexHourGO:        {"IndexHourGO", familyIndex, false, UnitHour},
	CtorIndexMinute:        {"IndexMinute", familyIndex, true, UnitMinute},
	CtorIndexMinuteGO:      {"IndexMinuteGO", familyIndex, false, UnitMinute},
	CtorIndexSecond:        {"IndexSecond", familyIndex, true, UnitSecond},
	CtorIndexSecondGO:      {"IndexSecondGO", familyIndex, false, UnitSecond},
	CtorIndexMillisecond:   {"IndexMillisecond", familyIndex, true, UnitMillisecond},
	CtorIndexMillisecondGO: {"IndexMillisecondGO", familyIndex, false, UnitMillisecond},
	CtorIndexMicrosecond:   {"IndexMicrosecond", familyIndex, true, UnitMicrosecond},
	CtorIndexMicrosecondGO: {"IndexMicrosecondGO", familyIndex, false, UnitMicrosecond},
	CtorIndexNanosecond:    {"IndexNanosecond", familyIndex, true, UnitNanosecond},
	CtorIndexNanosecondGO:  {"IndexNanosecondGO", familyIndex, false, UnitNanosecond},
}

func (c Constructor) info() ctorInfo {
	if int(c) < len(ctorTable) {
		return ctorTable[c]
	}
	return ctorTable[CtorInvalid]
}

// String returns the container class name, e.g. "IndexHierarchyGO".
func (c Constructor) String() string {
	if int(c) >= len(ctorTable) {
		return "Constructor(" + strconv.Itoa(int(c)) + ")"
	}
	return c.info().name
}

// Static reports whether the container is fixed after creation.
// Growable ("GO") variants return false.
func (c Constructor) Static() bool { return c.info().static }

// IsFrame reports whether c builds a two-dimensional frame.
func (c Constructor) IsFrame() bool { return c.info().family == familyFrame }

// IsIndex reports whether c builds a single-level index (plain or temporal).
func (c Constructor) IsIndex() bool { return c.info().family == familyIndex }

// IsHierarchy reports whether c builds a hierarchical index.
func (c Constructor) IsHierarchy() bool { return c.info().family == familyHierarchy }

// IsAutoFactory reports whether c picks a level index type from its labels.
func (c Constructor) IsAutoFactory() bool { return c.info().family == familyFactory }

// Unit returns the resolution of a temporal index; ok is false otherwise.
func (c Constructor) Unit() (u Unit, ok bool) {
	u = c.info().unit
	return u, u != UnitNone
}

// Hierarchy returns the hierarchical constructor that matches the static
// trait of c: IndexHierarchy for static, IndexHierarchyGO for growable.
func (c Constructor) Hierarchy() Constructor {
	if c.Static() {
		return CtorIndexHierarchy
	}
	return CtorIndexHierarchyGO
}

// TemporalIndex returns the static or growable index constructor for unit u.
func TemporalIndex(u Unit, static bool) Constructor {
	for c := CtorIndexYear; c <= CtorIndexNanosecondGO; c++ {
		info := c.info()
		if info.unit == u && info.static == static {
			return c
		}
	}
	if static {
		return CtorIndex
	}
	return CtorIndexGO
}
