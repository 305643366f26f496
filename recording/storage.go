package recording

import (
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/geom"
)

// ErrUnknownTexture is returned for texture ids Storage did not create.
var ErrUnknownTexture = errors.New("recording: unknown texture")

// Storage keeps textures as *image.RGBA. Texture ids start at 1 and are
// never reused.
type Storage struct {
	textures []*image.RGBA
}

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{textures: make([]*image.RGBA, 0, 4)}
}

// CreateTexture implements batch.TextureStorage.
func (s *Storage) CreateTexture(width, height int) (batch.TextureID, error) {
	if width <= 0 || height <= 0 {
		return batch.NoTexture, errors.Errorf("recording: invalid texture size %dx%d", width, height)
	}
	s.textures = append(s.textures, image.NewRGBA(image.Rect(0, 0, width, height)))
	// #nosec G115 -- texture count is far below uint32 max
	return batch.TextureID(len(s.textures)), nil
}

// SetData implements batch.TextureStorage.
func (s *Storage) SetData(id batch.TextureID, pixels []byte) error {
	img, err := s.texture(id)
	if err != nil {
		return err
	}
	if len(pixels) != len(img.Pix) {
		return errors.Errorf("recording: texture %d expects %d bytes, got %d", id, len(img.Pix), len(pixels))
	}
	copy(img.Pix, pixels)
	return nil
}

// SetRegionData implements batch.TextureStorage.
func (s *Storage) SetRegionData(id batch.TextureID, region geom.Rectangle, pixels []byte) error {
	img, err := s.texture(id)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if !geom.Rect(0, 0, b.Dx(), b.Dy()).ContainsRect(region) {
		return errors.Errorf("recording: region %v outside texture %d", region, id)
	}
	row := region.Width * 4
	if len(pixels) != row*region.Height {
		return errors.Errorf("recording: region %v expects %d bytes, got %d", region, row*region.Height, len(pixels))
	}
	for y := 0; y < region.Height; y++ {
		off := img.PixOffset(region.X, region.Y+y)
		copy(img.Pix[off:off+row], pixels[y*row:(y+1)*row])
	}
	return nil
}

// TextureSize implements batch.TextureStorage. Unknown ids have size zero.
func (s *Storage) TextureSize(id batch.TextureID) (width, height int) {
	img, err := s.texture(id)
	if err != nil {
		return 0, 0
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// Image returns the texture's pixels. The image is shared with the storage.
func (s *Storage) Image(id batch.TextureID) (*image.RGBA, error) {
	return s.texture(id)
}

// Len returns the number of textures created.
func (s *Storage) Len() int { return len(s.textures) }

// WritePNG encodes a texture as PNG.
func (s *Storage) WritePNG(w io.Writer, id batch.TextureID) error {
	img, err := s.texture(id)
	if err != nil {
		return err
	}
	return errors.Wrapf(png.Encode(w, img), "recording: encode texture %d", id)
}

func (s *Storage) texture(id batch.TextureID) (*image.RGBA, error) {
	if id == batch.NoTexture || int(id) > len(s.textures) {
		return nil, errors.Wrapf(ErrUnknownTexture, "id %d", id)
	}
	return s.textures[id-1], nil
}
