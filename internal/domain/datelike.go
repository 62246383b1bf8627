package domain

import "time"

// isoLayout keeps millisecond precision so round-tripped values match
// what the CMS serialises.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// TimeConvertible is implemented by values that carry a timestamp but
// are not a time.Time themselves (e.g. driver-specific date wrappers).
type TimeConvertible interface {
	AsTime() time.Time
}

// ToISOString coerces the accepted date shapes to an ISO-8601 string:
// a time.Time becomes its ISO form, a string is trusted as-is, a
// TimeConvertible is converted, anything else (nil included) yields nil.
// It never panics; malformed input degrades to nil.
func ToISOString(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		s := t.UTC().Format(isoLayout)
		return &s
	case *time.Time:
		if t == nil {
			return nil
		}
		s := t.UTC().Format(isoLayout)
		return &s
	case string:
		return &t
	case TimeConvertible:
		s := t.AsTime().UTC().Format(isoLayout)
		return &s
	default:
		return nil
	}
}
