package dom

import "math"

// CalcAngle returns the clockwise angle in whole degrees, from 0 to 360,
// between the upward vertical axis through el's center and the ray from that
// center to the pointer. It returns 0 for an invalid element or a pointer
// exactly on the center.
func CalcAngle(el Element, p Pointer) int {
	rect, ok := GetBoundingClientRect(el)
	if !ok || p == nil {
		return 0
	}

	originX, originY := rect.Center()
	px, py := p.ClientX(), p.ClientY()

	x := math.Abs(originX - px)
	y := math.Abs(originY - py)
	z := math.Sqrt(x*x + y*y)
	if z == 0 {
		return 0
	}

	rad := math.Acos(y / z)
	angle := int(math.Floor(180 / (math.Pi / rad)))

	switch {
	case px > originX && py > originY: // lower right
		angle = 180 - angle
	case px == originX && py > originY: // due south
		angle = 180
	case px > originX && py == originY: // due east
		angle = 90
	case px < originX && py > originY: // lower left
		angle = 180 + angle
	case px < originX && py == originY: // due west
		angle = 270
	case px < originX && py < originY: // upper left
		angle = 360 - angle
	}

	return angle
}
