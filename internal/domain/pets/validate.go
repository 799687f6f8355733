package pets

import "strings"

// ValidateNew revisa requeridos en orden fijo y reporta el primero que falte.
// Strings vacíos o solo espacios cuentan como ausentes; en numéricos solo cuenta la presencia.
func ValidateNew(in CreateInput) error {
	required := []struct {
		field string
		ok    bool
	}{
		{"name", present(in.Name)},
		{"species", present(in.Species)},
		{"image", present(in.Image)},
		{"lat", in.Lat != nil},
		{"long", in.Long != nil},
		{"desc", present(in.Desc)},
		{"age", in.Age != nil},
	}

	for _, r := range required {
		if !r.ok {
			return &FieldError{Field: r.field}
		}
	}
	return nil
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
