package recording_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/geom"
	"github.com/gogpu/batch/recording"
)

func TestStorageCreateAndSetData(t *testing.T) {
	s := recording.NewStorage()

	_, err := s.CreateTexture(0, 4)
	assert.Error(t, err)

	id, err := s.CreateTexture(2, 2)
	require.NoError(t, err)
	assert.Equal(t, batch.TextureID(1), id)
	assert.Equal(t, 1, s.Len())

	w, h := s.TextureSize(id)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)

	assert.Error(t, s.SetData(id, make([]byte, 3)))
	pix := bytes.Repeat([]byte{1, 2, 3, 4}, 4)
	require.NoError(t, s.SetData(id, pix))

	img, err := s.Image(id)
	require.NoError(t, err)
	assert.Equal(t, pix, img.Pix)
}

func TestStorageUnknownTexture(t *testing.T) {
	s := recording.NewStorage()
	assert.ErrorIs(t, s.SetData(batch.NoTexture, nil), recording.ErrUnknownTexture)
	assert.ErrorIs(t, s.SetData(7, nil), recording.ErrUnknownTexture)

	w, h := s.TextureSize(7)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestStorageSetRegionData(t *testing.T) {
	s := recording.NewStorage()
	id, err := s.CreateTexture(4, 4)
	require.NoError(t, err)

	region := geom.Rect(1, 2, 2, 1)
	require.NoError(t, s.SetRegionData(id, region, bytes.Repeat([]byte{255, 0, 0, 255}, 2)))
	assert.Error(t, s.SetRegionData(id, geom.Rect(3, 3, 2, 2), make([]byte, 16)))
	assert.Error(t, s.SetRegionData(id, region, make([]byte, 4)))

	img, err := s.Image(id)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 2))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 3))
}

func TestUploadAtlas(t *testing.T) {
	s := recording.NewStorage()

	alpha := image.NewAlpha(image.Rect(0, 0, 3, 2))
	alpha.SetAlpha(1, 1, color.Alpha{A: 128})

	id, err := batch.UploadAtlas(s, alpha)
	require.NoError(t, err)

	img, err := s.Image(id)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 128, 128, 128}, img.RGBAAt(1, 1), "coverage becomes premultiplied white")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))

	_, err = batch.UploadAtlas(s, image.NewAlpha(image.Rectangle{}))
	assert.ErrorIs(t, err, batch.ErrInvalidArgument)
}

func TestUpdateRegion(t *testing.T) {
	s := recording.NewStorage()
	id, err := s.CreateTexture(8, 8)
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	// Scaled up from 2x2 to 4x4.
	require.NoError(t, batch.UpdateRegion(s, id, geom.Rect(2, 2, 4, 4), src))
	img, err := s.Image(id)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 1))

	err = batch.UpdateRegion(s, id, geom.Rect(6, 6, 4, 4), src)
	assert.ErrorIs(t, err, batch.ErrInvalidArgument)
}

func TestStorageWritePNG(t *testing.T) {
	s := recording.NewStorage()
	id, err := s.CreateTexture(3, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WritePNG(&buf, id))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 5), img.Bounds())
}
