package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-engine/internal/logger"
)

// fakeGPU records uploads, binds, and deletes so registry logic can be tested
// without a GL context.
type fakeGPU struct {
	nextHandle uint32
	uploads    []uploadCall
	binds      map[int]uint32
	deleted    []uint32
}

type uploadCall struct {
	width, height, channels int
	pixels                  []byte
}

func newFakeGPU() *fakeGPU {
	return &fakeGPU{nextHandle: 100, binds: make(map[int]uint32)}
}

func (g *fakeGPU) CreateTexture(width, height, channels int, pixels []byte) (uint32, error) {
	g.uploads = append(g.uploads, uploadCall{width, height, channels, pixels})
	g.nextHandle++
	return g.nextHandle, nil
}

func (g *fakeGPU) BindUnit(slot int, handle uint32) {
	g.binds[slot] = handle
}

func (g *fakeGPU) Delete(handle uint32) {
	g.deleted = append(g.deleted, handle)
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func writeJPEG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, nil))
	require.NoError(t, f.Close())
	return path
}

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadAssignsSlotsInRegistrationOrder(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	pngPath := writePNG(t, dir, "a.png", solidNRGBA(4, 4, color.NRGBA{R: 255, A: 255}))
	jpgPath := writeJPEG(t, dir, "b.jpg", solidNRGBA(4, 4, color.NRGBA{G: 255, A: 255}))

	require.NoError(t, r.Load(pngPath, "first"))
	require.NoError(t, r.Load(jpgPath, "second"))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 0, r.FindSlot("first"))
	assert.Equal(t, 1, r.FindSlot("second"))
	assert.Equal(t, []string{"first", "second"}, r.Tags())

	h0, ok := r.FindHandle("first")
	require.True(t, ok)
	h1, ok := r.FindHandle("second")
	require.True(t, ok)
	assert.NotEqual(t, h0, h1)

	// PNG truecolor decodes with alpha, JPEG without.
	require.Len(t, gpu.uploads, 2)
	assert.Equal(t, 4, gpu.uploads[0].channels)
	assert.Equal(t, 3, gpu.uploads[1].channels)
}

func TestLoadRejectsUnsupportedChannelLayout(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, dir, "gray.png", gray)

	err := r.Load(path, "gray")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, gpu.uploads)
}

func TestLoadFailsOnUnreadableImage(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))

	require.Error(t, r.Load(bad, "bad"))
	require.Error(t, r.Load(filepath.Join(dir, "missing.png"), "missing"))
	assert.Equal(t, 0, r.Len())
}

func TestLoadRejectsDuplicateTag(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	a := writePNG(t, dir, "a.png", solidNRGBA(2, 2, color.NRGBA{R: 255, A: 255}))
	b := writePNG(t, dir, "b.png", solidNRGBA(2, 2, color.NRGBA{B: 255, A: 255}))

	require.NoError(t, r.Load(a, "wood"))
	err := r.Load(b, "wood")
	require.ErrorIs(t, err, ErrDuplicateTag)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 0, r.FindSlot("wood"))
}

func TestLoadFailsWhenSlotsExhausted(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	path := writePNG(t, dir, "tex.png", solidNRGBA(2, 2, color.NRGBA{R: 255, A: 255}))
	for i := 0; i < MaxSlots; i++ {
		require.NoError(t, r.Load(path, fmt.Sprintf("tex-%d", i)))
	}
	require.Equal(t, MaxSlots, r.Len())

	err := r.Load(path, "one-too-many")
	require.ErrorIs(t, err, ErrSlotsExhausted)
	assert.Equal(t, MaxSlots, r.Len())
	assert.Equal(t, -1, r.FindSlot("one-too-many"))
}

func TestFindMissReturnsSentinel(t *testing.T) {
	r := NewRegistry(newFakeGPU(), logger.New())
	assert.Equal(t, -1, r.FindSlot("nope"))
	_, ok := r.FindHandle("nope")
	assert.False(t, ok)
}

func TestBindAllBindsEverySlot(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	path := writePNG(t, dir, "tex.png", solidNRGBA(2, 2, color.NRGBA{A: 255}))
	require.NoError(t, r.Load(path, "a"))
	require.NoError(t, r.Load(path, "b"))
	require.NoError(t, r.Load(path, "c"))

	r.BindAll()
	require.Len(t, gpu.binds, 3)
	for tag, slot := range map[string]int{"a": 0, "b": 1, "c": 2} {
		handle, ok := r.FindHandle(tag)
		require.True(t, ok)
		assert.Equal(t, handle, gpu.binds[slot])
	}
}

func TestTeardownDeletesEveryHandleOnce(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	path := writePNG(t, dir, "tex.png", solidNRGBA(2, 2, color.NRGBA{A: 255}))
	require.NoError(t, r.Load(path, "a"))
	require.NoError(t, r.Load(path, "b"))

	var handles []uint32
	for _, tag := range []string{"a", "b"} {
		h, ok := r.FindHandle(tag)
		require.True(t, ok)
		handles = append(handles, h)
	}

	r.Teardown()
	assert.ElementsMatch(t, handles, gpu.deleted)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, -1, r.FindSlot("a"))
}

func TestLoadFlipsImageVertically(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	r := NewRegistry(gpu, logger.New())

	// Top row red, bottom row blue. After the flip the upload starts with blue.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	path := writePNG(t, dir, "flip.png", img)

	require.NoError(t, r.Load(path, "flip"))
	require.Len(t, gpu.uploads, 1)
	pix := gpu.uploads[0].pixels
	require.Len(t, pix, 8)
	assert.Equal(t, byte(255), pix[2], "first uploaded pixel should be blue")
	assert.Equal(t, byte(255), pix[4], "second uploaded pixel should be red")
}

func TestChannelCount(t *testing.T) {
	assert.Equal(t, 3, channelCount(image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)))
	assert.Equal(t, 4, channelCount(image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	assert.Equal(t, 4, channelCount(image.NewRGBA(image.Rect(0, 0, 2, 2))))
	assert.Equal(t, 1, channelCount(image.NewGray(image.Rect(0, 0, 2, 2))))
	assert.Equal(t, 0, channelCount(image.NewCMYK(image.Rect(0, 0, 2, 2))))
}

func TestFlippedPixelsPacksRGBTightly(t *testing.T) {
	img := solidNRGBA(3, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	pix := flippedPixels(img, 3)
	require.Len(t, pix, 3*2*3)
	for i := 0; i < len(pix); i += 3 {
		assert.Equal(t, []byte{10, 20, 30}, pix[i:i+3])
	}
}
