package batch

import "github.com/gogpu/batch/geom"

// Sprite is a sub-rectangle of a texture in pixels. An empty Source means
// the whole texture.
type Sprite struct {
	Texture TextureID
	Source  geom.Rectangle
}

var unitRect = geom.RectF(0, 0, 1, 1)

// SetTexture makes id the active texture, covering all of it.
func (b *Batcher) SetTexture(id TextureID) {
	b.state.Texture = id
	b.clearSprite()
}

// SetSprite makes s the active texture region. Texture coordinates of
// subsequent draws are remapped from [0,1] into the sprite's source
// rectangle. Switching between sprites of the same texture does not start a
// new batch.
func (b *Batcher) SetSprite(s Sprite) error {
	w, h := b.renderer.TextureSize(s.Texture)
	if w <= 0 || h <= 0 {
		return invalidArg("texture %d has no size", s.Texture)
	}
	full := geom.Rect(0, 0, w, h)
	src := s.Source
	if src.Empty() {
		src = full
	}
	if !full.ContainsRect(src) {
		return invalidArg("sprite source %v outside texture %v", src, full)
	}

	b.state.Texture = s.Texture
	b.setUVRect(geom.RectF(
		float32(src.X)/float32(w),
		float32(src.Y)/float32(h),
		float32(src.Width)/float32(w),
		float32(src.Height)/float32(h),
	))
	return nil
}

// Sprite returns the active texture region in normalized coordinates.
func (b *Batcher) Sprite() (TextureID, geom.RectangleF) {
	return b.state.Texture, b.uvRect
}

func (b *Batcher) setUVRect(r geom.RectangleF) {
	b.uvRect = r
	b.remap = r != unitRect
}

func (b *Batcher) clearSprite() {
	b.setUVRect(unitRect)
}
