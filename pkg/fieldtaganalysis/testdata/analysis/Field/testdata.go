package testdata

//fieldtag:generate
type Pair struct {
	first_name string
	FirstName  string // want `Pair: fields first_name and FirstName both map to tag FirstName`
}

//fieldtag:generate
type Renamed struct {
	Value  int `fieldtag:"value"` // want `Renamed.Value: tag name "value" is not an exported identifier`
	Other  int `fieldtag:"Value"`
	hidden int `fieldtag:"-"`
	_      int
}
