package testdata

//fieldtag:bogus
type Point struct{ X, Y int } // want `Point: unknown directive "bogus"`

//fieldtag:generate=true
type Line struct{ A, B Point } // want `Line: directive "generate" takes no value`

//fieldtag:ns=
type Circle struct{ R int } // want `Circle: directive "ns" requires a value`

//fieldtag:ns=a
//fieldtag:ns=b
type Rect struct{ W, H int } // want `Rect: conflicting namespaces "a" and "b"`

//fieldtag:ns=2d
type Square struct{ S int } // want `Square: namespace "2d" is not a valid identifier`

// fieldtag:generate is not a directive.
type Plain struct{ X int }
