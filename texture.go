package batch

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/gogpu/batch/geom"
)

// UploadAtlas creates a texture holding a rasterized font atlas. Coverage
// becomes premultiplied white so that vertex colors tint the glyphs.
func UploadAtlas(storage TextureStorage, atlas *image.Alpha) (TextureID, error) {
	if storage == nil || atlas == nil {
		return NoTexture, invalidArg("nil storage or atlas")
	}
	b := atlas.Bounds()
	if b.Empty() {
		return NoTexture, invalidArg("empty atlas image")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(rgba, rgba.Bounds(), image.NewUniform(color.White), image.Point{}, atlas, b.Min, draw.Src)

	id, err := storage.CreateTexture(b.Dx(), b.Dy())
	if err != nil {
		return NoTexture, errors.Wrap(err, "batch: create atlas texture")
	}
	if err := storage.SetData(id, rgba.Pix); err != nil {
		return NoTexture, errors.Wrapf(err, "batch: upload atlas texture %d", id)
	}
	Logger().Debug("batch: atlas uploaded",
		slog.Any("texture", id),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()))
	return id, nil
}

// UpdateRegion replaces region of texture id with src. src is scaled to
// the region size if they differ.
func UpdateRegion(storage TextureStorage, id TextureID, region geom.Rectangle, src image.Image) error {
	if storage == nil || src == nil {
		return invalidArg("nil storage or image")
	}
	if region.Empty() {
		return invalidArg("empty region %v", region)
	}
	w, h := storage.TextureSize(id)
	if !geom.Rect(0, 0, w, h).ContainsRect(region) {
		return invalidArg("region %v outside texture %d (%dx%d)", region, id, w, h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, region.Width, region.Height))
	sb := src.Bounds()
	if sb.Dx() == region.Width && sb.Dy() == region.Height {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}
	return errors.Wrapf(storage.SetRegionData(id, region, dst.Pix), "batch: update texture %d", id)
}
