package mathx

import "golang.org/x/exp/constraints"

// InRange reports lo <= v && v < hi. Hardware operating windows are half-open.
func InRange[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v < hi
}
