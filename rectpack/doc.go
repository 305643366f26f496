// Package rectpack packs rectangles into a growable bin using the MaxRects
// free-rectangle algorithm.
//
// The packer keeps a list of maximal free rectangles. Free rectangles may
// overlap each other but never overlap a placed rectangle. Every placement
// splits the free rectangles it touches into at most four margins and then
// drops free rectangles that are contained in another one.
//
// # Usage
//
//	cfg := rectpack.DefaultConfig()
//	cfg.Padding = 1
//	p, err := rectpack.New(cfg)
//	if err != nil {
//	    return err
//	}
//	rects, err := p.Insert([]rectpack.Size{{Width: 10, Height: 10}, {Width: 5, Height: 20}})
//	if err != nil {
//	    return err // *CapacityError names the size that did not fit
//	}
//	w, h := p.UsedWidth(), p.UsedHeight()
//
// Sizes are placed in input order; the i-th result belongs to the i-th
// size. Rectangles are never rotated.
//
// A Packer is not safe for concurrent use.
package rectpack
