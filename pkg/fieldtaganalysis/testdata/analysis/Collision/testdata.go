package testdata

import "strings"

//fieldtag:generate
type Person struct { // want `Person: generated name PersonField collides with PersonField declared at`
	Name string
}

var PersonField = 0

//fieldtag:generate
type Cat struct {
	Name string
}

//fieldtag:ns=cat_field
type Dog struct { // want `Dog: generated name CatField is also generated for Cat`
	Name string // want `Dog.Name: generated name CatFieldName is also generated for Cat.Name`
}

//fieldtag:generate
type Car struct {
	Wheels int // want `Car.Wheels: generated name CarFieldWheels collides with CarFieldWheels declared at`
}

func CarFieldWheels() int { return 4 }

//fieldtag:ns=strings
type words struct { // want `words: generated name strings collides with the import of "strings" at`
	list []string
}

func join(w words) string { return strings.Join(w.list, " ") }
