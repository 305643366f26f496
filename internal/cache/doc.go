// Package cache provides a small generic LRU cache.
//
// It memoizes values that are expensive to build and shared between
// callers, such as parsed font faces at a given size and DPI:
//
//	faces := cache.New[faceKey, font.Face](32)
//	face, err := faces.GetOrLoad(key, func() (font.Face, error) {
//	    return opentype.NewFace(f, opts)
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
