package dtype

import (
	"fmt"
	"time"
)

// Datetime64 is a point in time counted in Unit steps from the Unix epoch.
type Datetime64 struct {
	Value int64
	Unit  Unit
}

// Timedelta64 is a duration counted in Unit steps.
type Timedelta64 struct {
	Value int64
	Unit  Unit
}

// unitSeconds holds the length in seconds of every fixed, whole-second unit.
var unitSeconds = map[Unit]int64{
	UnitDay:    86400,
	UnitHour:   3600,
	UnitMinute: 60,
	UnitSecond: 1,
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Time converts d to a UTC time.Time.
func (d Datetime64) Time() time.Time {
	switch d.Unit {
	case UnitYear:
		return time.Date(1970+int(d.Value), time.January, 1, 0, 0, 0, 0, time.UTC)
	case UnitMonth:
		y := floorDiv(d.Value, 12)
		m := d.Value - y*12
		return time.Date(1970+int(y), time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	case UnitMillisecond:
		return time.UnixMilli(d.Value).UTC()
	case UnitMicrosecond:
		return time.UnixMicro(d.Value).UTC()
	case UnitNanosecond:
		return time.Unix(0, d.Value).UTC()
	}
	if s, ok := unitSeconds[d.Unit]; ok {
		return time.Unix(d.Value*s, 0).UTC()
	}
	return time.Time{}
}

// DatetimeFromTime expresses t in unit u, truncating toward the past.
func DatetimeFromTime(t time.Time, u Unit) Datetime64 {
	t = t.UTC()
	sec, nsec := t.Unix(), int64(t.Nanosecond())
	var v int64
	switch u {
	case UnitYear:
		v = int64(t.Year() - 1970)
	case UnitMonth:
		v = int64(t.Year()-1970)*12 + int64(t.Month()) - 1
	case UnitMillisecond:
		v = sec*1_000 + nsec/1_000_000
	case UnitMicrosecond:
		v = sec*1_000_000 + nsec/1_000
	case UnitNanosecond:
		v = sec*1_000_000_000 + nsec
	default:
		if s, ok := unitSeconds[u]; ok {
			v = floorDiv(sec, s)
		}
	}
	return Datetime64{Value: v, Unit: u}
}

// AsUnit re-expresses d in unit u.
func (d Datetime64) AsUnit(u Unit) Datetime64 {
	if d.Unit == u {
		return d
	}
	return DatetimeFromTime(d.Time(), u)
}

// String formats d with the precision of its unit, e.g. "2065-01-17" for
// days and "1970-01-01T09:38:35" for seconds.
func (d Datetime64) String() string {
	t := d.Time()
	switch d.Unit {
	case UnitYear:
		return fmt.Sprintf("%04d", t.Year())
	case UnitMonth:
		return t.Format("2006-01")
	case UnitDay:
		return t.Format("2006-01-02")
	case UnitHour:
		return t.Format("2006-01-02T15")
	case UnitMinute:
		return t.Format("2006-01-02T15:04")
	case UnitSecond:
		return t.Format("2006-01-02T15:04:05")
	case UnitMillisecond:
		return t.Format("2006-01-02T15:04:05.000")
	case UnitMicrosecond:
		return t.Format("2006-01-02T15:04:05.000000")
	case UnitNanosecond:
		return t.Format("2006-01-02T15:04:05.000000000")
	}
	return fmt.Sprintf("%d", d.Value)
}

// Duration converts d to a time.Duration. Calendar units (Y, M) have no
// fixed length and return ErrUnitConversion.
func (d Timedelta64) Duration() (time.Duration, error) {
	switch d.Unit {
	case UnitMillisecond:
		return time.Duration(d.Value) * time.Millisecond, nil
	case UnitMicrosecond:
		return time.Duration(d.Value) * time.Microsecond, nil
	case UnitNanosecond:
		return time.Duration(d.Value), nil
	}
	if s, ok := unitSeconds[d.Unit]; ok {
		return time.Duration(d.Value*s) * time.Second, nil
	}
	return 0, fmt.Errorf("%w: timedelta64[%s] to time.Duration", ErrUnitConversion, d.Unit.Code())
}

// String formats d as "<count> <unit name>", e.g. "88017 days".
func (d Timedelta64) String() string {
	return fmt.Sprintf("%d %s", d.Value, unitNames[d.Unit])
}
