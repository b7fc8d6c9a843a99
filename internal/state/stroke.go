package state

import (
	"time"

	"github.com/google/uuid"
)

// Stroke is one continuous path from pointer-down to pointer-up or leave.
type Stroke struct {
	ID     string
	Tool   DrawColor
	Style  StrokeStyle
	Points []Point
	Time   time.Time
}

func newStroke(tool DrawColor, style StrokeStyle, start Point, now time.Time) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Tool:   tool,
		Style:  style,
		Points: []Point{start},
		Time:   now,
	}
}

func (s *Stroke) last() Point { return s.Points[len(s.Points)-1] }

// Erases reports whether the stroke removes pixels instead of painting them.
func (s Stroke) Erases() bool { return s.Style.Mode == DestinationOut }
