package rectpack

import "github.com/gogpu/batch/geom"

// score rates placing a w x h reservation at the top-left of fr.
// Lower is better; the second value breaks ties.
func (p *Packer) score(fr geom.Rectangle, w, h int) (primary, secondary int) {
	leftoverH := fr.Width - w
	leftoverV := fr.Height - h
	shortSide := min(leftoverH, leftoverV)
	longSide := max(leftoverH, leftoverV)

	switch p.cfg.Heuristic {
	case BestLongSideFit:
		return longSide, shortSide
	case BestAreaFit:
		return fr.Area() - w*h, shortSide
	case BottomLeft:
		return fr.Y + h, fr.X
	case ContactPoint:
		// Maximizing contact is minimizing its negation.
		return -p.contactScore(fr.X, fr.Y, w, h), 0
	default:
		return shortSide, longSide
	}
}

// contactScore returns the length of the perimeter of the candidate that
// touches the bin edges or reserved rectangles.
func (p *Packer) contactScore(x, y, w, h int) int {
	score := 0
	if x == 0 || x+w == p.width {
		score += h
	}
	if y == 0 || y+h == p.height {
		score += w
	}
	for _, r := range p.reserved {
		if r.X == x+w || r.Right() == x {
			score += commonInterval(r.Y, r.Bottom(), y, y+h)
		}
		if r.Y == y+h || r.Bottom() == y {
			score += commonInterval(r.X, r.Right(), x, x+w)
		}
	}
	return score
}

// commonInterval returns the overlap length of [a0,a1) and [b0,b1).
func commonInterval(a0, a1, b0, b1 int) int {
	if a1 <= b0 || b1 <= a0 {
		return 0
	}
	return min(a1, b1) - max(a0, b0)
}
