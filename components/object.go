package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal centre of the footprint.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical centre of the footprint.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// Overlaps is an exact AABB test; resolv checks only share cells.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space every footprint is registered in.
var Space = donburi.NewComponentType[resolv.Space]()
