package statestore

import "reflect"

// sameState reports whether a and b are the same state value.
//
// Reference kinds compare by pointer, comparable values by ==. Values that are
// neither are never considered the same.
func sameState(a, b State) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}
