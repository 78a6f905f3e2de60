package testdata

//fieldtag:generate
type Point struct {
	X, Y int
}

func origin() Point {
	var p Point
	_ = PointField
	return p
}
