package testdata

//fieldtag:generate
type Color int // want `Color is int, not a struct type`

//fieldtag:generate
type Shape interface{ Area() float64 } // want `Shape is an interface type, not a struct type`

//fieldtag:generate
type Names []string // want `Names is a slice type, not a struct type`

//fieldtag:generate
type Box[T any] struct{ V T } // want `Box is generic; generic struct types are not supported`

type Point struct{ X, Y int }

//fieldtag:generate
type P = Point // want `P is an alias; generate tags for the aliased type instead`
