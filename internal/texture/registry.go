package texture

import (
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"

	"scene-engine/internal/logger"
)

// MaxSlots is the number of texture units the scene can use simultaneously.
// Slot indices are also the texture unit indices, so the registry refuses to
// grow past the hardware table.
const MaxSlots = 16

var (
	// ErrUnsupportedFormat is returned when a decoded image is not a 3-channel
	// (opaque) or 4-channel (alpha) 8-bit layout.
	ErrUnsupportedFormat = errors.New("unsupported channel layout")
	// ErrSlotsExhausted is returned when all 16 texture slots are taken.
	ErrSlotsExhausted = errors.New("texture slots exhausted")
	// ErrDuplicateTag is returned when a tag is already registered.
	ErrDuplicateTag = errors.New("duplicate texture tag")
)

// GPU is the GL-facing side of the registry: create (upload) a texture object,
// bind a handle to a texture unit, and delete a handle. GLBackend implements it;
// tests substitute a recording fake so registry logic runs without a context.
type GPU interface {
	CreateTexture(width, height, channels int, pixels []byte) (uint32, error)
	BindUnit(slot int, handle uint32)
	Delete(handle uint32)
}

// Entry is one registered texture. Slot equals registration order, starting at 0,
// and doubles as the texture unit the handle is bound to by BindAll.
type Entry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// Registry loads image files into GPU texture objects and addresses them by tag.
// Handles live for the registry's lifetime; Teardown releases them all.
type Registry struct {
	gpu     GPU
	log     *logger.Logger
	entries []Entry
	byTag   map[string]int // tag -> index into entries
}

// NewRegistry returns an empty registry backed by the given GPU.
func NewRegistry(gpu GPU, log *logger.Logger) *Registry {
	return &Registry{
		gpu:   gpu,
		log:   log,
		byTag: make(map[string]int),
	}
}

// Load decodes the image file at path, uploads it, and registers it under tag
// with the next free slot. The image is flipped vertically during load so row 0
// lands at V=0. Only 3- and 4-channel 8-bit layouts are accepted; anything else
// fails with ErrUnsupportedFormat and leaves the registry unchanged. A tag that
// is already registered fails with ErrDuplicateTag, and the 17th load fails
// with ErrSlotsExhausted.
func (r *Registry) Load(path, tag string) error {
	if _, ok := r.byTag[tag]; ok {
		r.log.Warnf("texture %q already registered, skipping %s", tag, path)
		return fmt.Errorf("texture %q: %w", tag, ErrDuplicateTag)
	}
	if len(r.entries) >= MaxSlots {
		r.log.Errorf("texture %q: all %d slots in use", tag, MaxSlots)
		return fmt.Errorf("texture %q: %w", tag, ErrSlotsExhausted)
	}

	f, err := os.Open(path)
	if err != nil {
		r.log.Errorf("texture %q: open %s: %v", tag, path, err)
		return fmt.Errorf("texture %q: open: %w", tag, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		r.log.Errorf("texture %q: decode %s: %v", tag, path, err)
		return fmt.Errorf("texture %q: decode %s: %w", tag, path, err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		r.log.Warnf("texture %q: %s has %d channels, want 3 or 4; skipped", tag, path, channels)
		return fmt.Errorf("texture %q: %d channels: %w", tag, channels, ErrUnsupportedFormat)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := flippedPixels(img, channels)

	handle, err := r.gpu.CreateTexture(w, h, channels, pixels)
	if err != nil {
		r.log.Errorf("texture %q: upload: %v", tag, err)
		return fmt.Errorf("texture %q: upload: %w", tag, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle, Slot: slot})
	r.byTag[tag] = slot
	r.log.Infof("loaded texture %q from %s (%dx%d, %d channels) into slot %d", tag, path, w, h, channels, slot)
	return nil
}

// BindAll binds every registered texture to the texture unit matching its slot,
// exposing slots 0..N-1 simultaneously for sampling. Call once after all Load
// calls and before any draw.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.gpu.BindUnit(e.Slot, e.Handle)
	}
}

// FindSlot returns the slot registered under tag, or -1 when absent. Callers
// push the result straight into the sampler uniform, so a miss degrades the
// draw rather than crashing it; the miss is logged.
func (r *Registry) FindSlot(tag string) int {
	if i, ok := r.byTag[tag]; ok {
		return r.entries[i].Slot
	}
	r.log.Warnf("texture slot lookup miss for tag %q", tag)
	return -1
}

// FindHandle returns the GPU handle registered under tag.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	if i, ok := r.byTag[tag]; ok {
		return r.entries[i].Handle, true
	}
	r.log.Warnf("texture handle lookup miss for tag %q", tag)
	return 0, false
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Tags returns the registered tags in slot order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.Tag
	}
	return tags
}

// Teardown releases every GPU texture object and empties the registry.
func (r *Registry) Teardown() {
	for _, e := range r.entries {
		r.gpu.Delete(e.Handle)
	}
	r.entries = nil
	r.byTag = make(map[string]int)
}

// channelCount reports the 8-bit channel layout of a decoded image.
// JPEG color images decode to YCbCr (3 channels); PNG truecolor decodes to
// RGBA/NRGBA (4). Gray, palette, and CMYK layouts are reported as-is and
// rejected by Load.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.YCbCr:
		return 3
	case *image.RGBA, *image.NRGBA, *image.NYCbCrA:
		return 4
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 2
	default:
		return 0
	}
}

// flippedPixels flips the image vertically and returns tightly packed bytes:
// RGB triplets for 3-channel images, RGBA quads otherwise.
func flippedPixels(img image.Image, channels int) []byte {
	rgba := transform.FlipV(img)
	bounds := rgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if channels == 4 {
		if rgba.Stride == w*4 {
			return rgba.Pix
		}
		out := make([]byte, w*h*4)
		for y := 0; y < h; y++ {
			copy(out[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
		}
		return out
	}

	out := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			out = append(out, row[x], row[x+1], row[x+2])
		}
	}
	return out
}
