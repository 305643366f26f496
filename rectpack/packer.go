package rectpack

import (
	"math"
	"slices"

	"github.com/gogpu/batch/geom"
)

// Size is a requested rectangle size.
type Size struct {
	Width, Height int
}

// Packer implements the MaxRects bin packing algorithm over a bin that can
// grow on demand.
type Packer struct {
	cfg Config

	// Current bin extents.
	width  int
	height int

	// free holds maximal free rectangles. They may overlap each other.
	free []geom.Rectangle

	// reserved holds padded rectangles, used by the contact point score.
	reserved []geom.Rectangle

	// placed holds the visual (unpadded) rectangles.
	placed []geom.Rectangle

	usedWidth  int
	usedHeight int

	// growHeightNext selects the dimension GrowBoth grows next.
	growHeightNext bool
}

// New creates a packer for the given configuration.
// Zero MaxWidth/MaxHeight select DefaultMaxSize.
func New(cfg Config) (*Packer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Packer{cfg: cfg}
	p.Reset()
	return p, nil
}

// Reset removes all placements and restores the initial bin size.
func (p *Packer) Reset() {
	p.width = p.cfg.Width
	p.height = p.cfg.Height
	p.free = append(p.free[:0], geom.Rect(0, 0, p.width, p.height))
	p.reserved = p.reserved[:0]
	p.placed = p.placed[:0]
	p.usedWidth = 0
	p.usedHeight = 0
	p.growHeightNext = false
}

// Config returns the configuration the packer was created with.
func (p *Packer) Config() Config { return p.cfg }

// Width returns the current bin width.
func (p *Packer) Width() int { return p.width }

// Height returns the current bin height.
func (p *Packer) Height() int { return p.height }

// UsedWidth returns the largest right edge of any placed rectangle.
func (p *Packer) UsedWidth() int { return p.usedWidth }

// UsedHeight returns the largest bottom edge of any placed rectangle.
func (p *Packer) UsedHeight() int { return p.usedHeight }

// FreeRectangles returns a copy of the current free rectangle set.
func (p *Packer) FreeRectangles() []geom.Rectangle {
	return slices.Clone(p.free)
}

// Placed returns a copy of every non-empty rectangle placed so far.
func (p *Packer) Placed() []geom.Rectangle {
	return slices.Clone(p.placed)
}

// Occupancy returns the ratio of placed area to the current bin area,
// in the range of 0.0 and 1.0.
func (p *Packer) Occupancy() float64 {
	if p.width == 0 || p.height == 0 {
		return 0
	}
	area := 0
	for _, r := range p.placed {
		area += r.Area()
	}
	return float64(area) / float64(p.width*p.height)
}

// Insert places every size in input order and returns the placements in
// the same order.
//
// Insert is atomic: when a size cannot be placed the packer is restored to
// its state before the call and a *CapacityError naming the size is
// returned.
func (p *Packer) Insert(sizes []Size) ([]geom.Rectangle, error) {
	snap := p.snapshot()
	out := make([]geom.Rectangle, len(sizes))
	for i, s := range sizes {
		r, err := p.insert(s)
		if err != nil {
			p.restore(snap)
			return nil, &CapacityError{Index: i, Size: s, Err: err}
		}
		out[i] = r
	}
	return out, nil
}

func (p *Packer) insert(s Size) (geom.Rectangle, error) {
	if s.Width < 0 || s.Height < 0 {
		return geom.Rectangle{}, ErrInvalidSize
	}
	if s.Width == 0 || s.Height == 0 {
		// Degenerate request: nothing to reserve.
		return geom.Rect(0, 0, s.Width, s.Height), nil
	}

	pad := p.cfg.Padding
	w, h := s.Width+2*pad, s.Height+2*pad
	if w > p.cfg.MaxWidth || h > p.cfg.MaxHeight {
		return geom.Rectangle{}, ErrTooLarge
	}

	for {
		node, ok := p.findPosition(w, h)
		if ok {
			p.place(node)
			visual := geom.Rect(node.X+pad, node.Y+pad, s.Width, s.Height)
			p.placed = append(p.placed, visual)
			p.usedWidth = max(p.usedWidth, visual.Right())
			p.usedHeight = max(p.usedHeight, visual.Bottom())
			return visual, nil
		}
		if !p.grow(w, h) {
			return geom.Rectangle{}, ErrOutOfSpace
		}
	}
}

// findPosition scores every free rectangle that can hold a w x h
// reservation and returns the best placement.
func (p *Packer) findPosition(w, h int) (geom.Rectangle, bool) {
	best1, best2 := math.MaxInt, math.MaxInt
	var best geom.Rectangle
	found := false
	for _, fr := range p.free {
		if fr.Width < w || fr.Height < h {
			continue
		}
		s1, s2 := p.score(fr, w, h)
		if s1 < best1 || (s1 == best1 && s2 < best2) {
			best1, best2 = s1, s2
			best = geom.Rect(fr.X, fr.Y, w, h)
			found = true
		}
	}
	return best, found
}

// place removes node from the free set.
func (p *Packer) place(node geom.Rectangle) {
	var splits []geom.Rectangle
	kept := p.free[:0]
	for _, fr := range p.free {
		if !fr.Intersects(node) {
			kept = append(kept, fr)
			continue
		}
		splits = appendSplits(splits, fr, node)
	}
	p.free = append(kept, splits...)
	p.prune()
	p.reserved = append(p.reserved, node)
}

// appendSplits appends the up to four margins of fr left over around node.
func appendSplits(dst []geom.Rectangle, fr, node geom.Rectangle) []geom.Rectangle {
	if node.X > fr.X {
		dst = append(dst, geom.Rect(fr.X, fr.Y, node.X-fr.X, fr.Height))
	}
	if node.Right() < fr.Right() {
		dst = append(dst, geom.Rect(node.Right(), fr.Y, fr.Right()-node.Right(), fr.Height))
	}
	if node.Y > fr.Y {
		dst = append(dst, geom.Rect(fr.X, fr.Y, fr.Width, node.Y-fr.Y))
	}
	if node.Bottom() < fr.Bottom() {
		dst = append(dst, geom.Rect(fr.X, node.Bottom(), fr.Width, fr.Bottom()-node.Bottom()))
	}
	return dst
}

// prune drops free rectangles contained in another free rectangle.
func (p *Packer) prune() {
	free := p.free
	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			if free[j].ContainsRect(free[i]) {
				free = slices.Delete(free, i, i+1)
				i--
				break
			}
			if free[i].ContainsRect(free[j]) {
				free = slices.Delete(free, j, j+1)
				j--
			}
		}
	}
	p.free = free
}

// grow doubles one bin dimension according to the grow rule, clamped to
// the maximum. Under GrowBoth a dimension smaller than the w x h
// reservation is grown first. It reports false when the bin cannot grow
// any further.
func (p *Packer) grow(w, h int) bool {
	canW := p.width < p.cfg.MaxWidth
	canH := p.height < p.cfg.MaxHeight

	switch p.cfg.Grow {
	case GrowWidth:
		if !canW {
			return false
		}
		p.growWidth()
	case GrowHeight:
		if !canH {
			return false
		}
		p.growHeight()
	case GrowBoth:
		switch {
		case !canW && !canH:
			return false
		case w > p.width && canW:
			p.growWidth()
		case h > p.height && canH:
			p.growHeight()
		case (p.growHeightNext && canH) || !canW:
			p.growHeight()
			p.growHeightNext = false
		default:
			p.growWidth()
			p.growHeightNext = true
		}
	default:
		return false
	}
	return true
}

func (p *Packer) growWidth() {
	old := p.width
	next := min(old*2, p.cfg.MaxWidth)
	for i := range p.free {
		if p.free[i].Right() == old {
			p.free[i].Width += next - old
		}
	}
	p.free = append(p.free, geom.Rect(old, 0, next-old, p.height))
	p.width = next
	p.prune()
}

func (p *Packer) growHeight() {
	old := p.height
	next := min(old*2, p.cfg.MaxHeight)
	for i := range p.free {
		if p.free[i].Bottom() == old {
			p.free[i].Height += next - old
		}
	}
	p.free = append(p.free, geom.Rect(0, old, p.width, next-old))
	p.height = next
	p.prune()
}

type packerState struct {
	width, height         int
	free, reserved        []geom.Rectangle
	placed                []geom.Rectangle
	usedWidth, usedHeight int
	growHeightNext        bool
}

func (p *Packer) snapshot() packerState {
	return packerState{
		width:          p.width,
		height:         p.height,
		free:           slices.Clone(p.free),
		reserved:       slices.Clone(p.reserved),
		placed:         slices.Clone(p.placed),
		usedWidth:      p.usedWidth,
		usedHeight:     p.usedHeight,
		growHeightNext: p.growHeightNext,
	}
}

func (p *Packer) restore(s packerState) {
	p.width, p.height = s.width, s.height
	p.free, p.reserved, p.placed = s.free, s.reserved, s.placed
	p.usedWidth, p.usedHeight = s.usedWidth, s.usedHeight
	p.growHeightNext = s.growHeightNext
}
