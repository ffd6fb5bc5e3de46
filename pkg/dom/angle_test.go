package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/frontkit/pkg/dom"
)

func TestCalcAngle(t *testing.T) {
	t.Parallel()

	// Center at (50, 50).
	el := dom.NewDocument().CreateElement("div")
	el.SetBoundingClientRect(dom.Rect{Left: 0, Top: 0, Width: 100, Height: 100})

	tests := []struct {
		name     string
		x, y     float64
		expected int
	}{
		{"due north", 50, 0, 0},
		{"due east", 100, 50, 90},
		{"due south", 50, 100, 180},
		{"due west", 0, 50, 270},
		{"upper right", 80, 10, 36},
		{"lower right", 80, 90, 144},
		{"lower left", 20, 90, 216},
		{"upper left", 20, 10, 324},
		{"center", 50, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, dom.CalcAngle(el, dom.MouseEvent{Name: dom.EventMouseMove, X: tt.x, Y: tt.y}))
		})
	}

	t.Run("offset element", func(t *testing.T) {
		t.Parallel()
		other := dom.NewDocument().CreateElement("div")
		other.SetBoundingClientRect(dom.Rect{Left: 200, Top: 300, Width: 20, Height: 40})
		assert.Equal(t, 90, dom.CalcAngle(other, dom.MouseEvent{X: 500, Y: 320}))
		assert.Equal(t, 0, dom.CalcAngle(other, dom.MouseEvent{X: 210, Y: 0}))
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, dom.CalcAngle(nil, dom.MouseEvent{X: 1, Y: 1}))
		assert.Equal(t, 0, dom.CalcAngle(textNode{el}, dom.MouseEvent{X: 100, Y: 50}))
		assert.Equal(t, 0, dom.CalcAngle(el, nil))
	})
}
