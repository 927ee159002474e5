package numeric

import "errors"

// ErrInt64Range is returned by Int64 conversions when the truncated value
// does not fit in an int64.
var ErrInt64Range = errors.New("numeric: value outside int64 range")
