package merge

import "reflect"

// mergeMetadata shallow-merges b into a and returns the result. Keys
// present on one side only are carried over; keys present on both sides
// follow a deterministic policy: numeric values are summed, slice
// values are concatenated, and anything else takes b's value. Callers
// needing different semantics must pre-process metadata before merging.
//
// a is owned by the caller's accumulator and may be extended in place;
// b is only read.
func mergeMetadata(a, b map[string]any) map[string]any {
	if len(b) == 0 {
		return a
	}
	if a == nil {
		a = make(map[string]any, len(b))
	}
	for k, bv := range b {
		av, exists := a[k]
		if !exists {
			a[k] = bv
			continue
		}
		a[k] = mergeValue(av, bv)
	}
	return a
}

func mergeValue(a, b any) any {
	if sum, ok := sumNumbers(a, b); ok {
		return sum
	}
	if joined, ok := concatSlices(a, b); ok {
		return joined
	}
	return b
}

// sumNumbers adds two numeric values. Two ints stay int, other integer
// pairs widen to int64, and any float involvement produces float64.
func sumNumbers(a, b any) (any, bool) {
	if ai, ok := a.(int); ok {
		if bi, ok := b.(int); ok {
			return ai + bi, true
		}
	}
	af, aIntegral, aok := toFloat64(a)
	bf, bIntegral, bok := toFloat64(b)
	if !aok || !bok {
		return nil, false
	}
	if aIntegral && bIntegral {
		return int64(af) + int64(bf), true
	}
	return af + bf, true
}

func toFloat64(v any) (f float64, integral bool, ok bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true, true
	case int32:
		return float64(n), true, true
	case int64:
		return float64(n), true, true
	case float32:
		return float64(n), false, true
	case float64:
		return n, false, true
	}
	return 0, false, false
}

// concatSlices concatenates two slice values into a fresh slice. Slices
// of the same type keep that type; mixed element types fall back to
// []any.
func concatSlices(a, b any) (any, bool) {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() || av.Kind() != reflect.Slice || bv.Kind() != reflect.Slice {
		return nil, false
	}
	if av.Type() == bv.Type() {
		out := reflect.MakeSlice(av.Type(), 0, av.Len()+bv.Len())
		out = reflect.AppendSlice(out, av)
		out = reflect.AppendSlice(out, bv)
		return out.Interface(), true
	}
	out := make([]any, 0, av.Len()+bv.Len())
	for i := 0; i < av.Len(); i++ {
		out = append(out, av.Index(i).Interface())
	}
	for i := 0; i < bv.Len(); i++ {
		out = append(out, bv.Index(i).Interface())
	}
	return out, true
}
