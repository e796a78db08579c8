// Package cache provides a small generic LRU cache.
//
// The raster and ebitengine backends keep font faces in it, keyed by
// size, so that switching between a few text sizes does not rebuild
// faces.
//
//	faces := cache.New[float64, font.Face](8)
//	faces.OnEvict(func(_ float64, f font.Face) { f.Close() })
//	face, err := faces.GetOrCreate(12, newFace)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
