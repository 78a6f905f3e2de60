package misuse

//fieldtag:generate
type Person struct {
	Age   uint32
	Names []string
}

//fieldtag:generate
type Dog struct {
	Name string
}
