package components

import (
	"github.com/automoto/lightborne/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the resolv space. Resolv works in y-down coordinates with
// the origin at the top-left of the space, so Origin holds the world point
// (y-up) that maps to space (0, 0).
type SpaceData struct {
	*resolv.Space
	OriginX float64
	OriginY float64
}

// ToSpace converts a world box to resolv position and size.
func (s *SpaceData) ToSpace(r leveldata.Rect) (x, y, w, h float64) {
	return r.MinX - s.OriginX, s.OriginY - r.MaxY, r.Width(), r.Height()
}

// ToWorld converts a resolv box back to world space.
func (s *SpaceData) ToWorld(x, y, w, h float64) leveldata.Rect {
	return leveldata.Rect{
		MinX: x + s.OriginX,
		MinY: s.OriginY - y - h,
		MaxX: x + s.OriginX + w,
		MaxY: s.OriginY - y,
	}
}

var Space = donburi.NewComponentType[SpaceData]()
