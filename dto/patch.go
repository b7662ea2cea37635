// Package dto holds request bodies bound by the handlers and their mapping onto models.
package dto

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setSlice[T any](dst *[]T, v *[]T) {
	if v != nil {
		*dst = append([]T(nil), (*v)...)
	}
}
