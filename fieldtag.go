// Package fieldtag selects struct fields through generated, zero-size tag
// types instead of names.
//
// Running fieldtaggen on a struct emits one tag type per field and a
// namespace value grouping them:
//
//	//go:generate go run github.com/calumari/fieldtag/cmd/fieldtaggen -type Person
//	type Person struct {
//		age   uint32
//		names []string
//	}
//
//	p := Person{age: 19}
//	fieldtag.Set(&p, PersonField.Age, 20)
//	age := fieldtag.Get(&p, PersonField.Age) // 20
//	names := fieldtag.GetMut(&p, PersonField.Names)
//	*names = append(*names, "Smith")
//
// The tag picks the field at compile time. Passing a tag of another record,
// or a value of the wrong type, is a type error.
package fieldtag

// Field is implemented by the tag type generated for one field of S whose
// type is V.
type Field[S, V any] interface {
	// Get returns the field's value.
	Get(s *S) V
	// Set overwrites the field with v.
	Set(s *S, v V)
	// Ptr returns the address of the field.
	Ptr(s *S) *V
}

// Get returns the value of the field of s selected by f. The value is a
// copy; slices and maps keep sharing their backing storage with s.
func Get[F Field[S, V], S, V any](s *S, f F) V {
	return f.Get(s)
}

// Set overwrites the field of s selected by f with v.
func Set[F Field[S, V], S, V any](s *S, f F, v V) {
	f.Set(s, v)
}

// GetMut returns a pointer to the field of s selected by f, for in-place
// updates such as appending to a slice field.
func GetMut[F Field[S, V], S, V any](s *S, f F) *V {
	return f.Ptr(s)
}
