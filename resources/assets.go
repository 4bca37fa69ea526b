package resources

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"sync"

	"runcat/internal/core/model"

	"fyne.io/fyne/v2"
)

const (
	// FrameCount is the sleeping pose plus five running poses.
	FrameCount = 6
	// IconSize is the edge length of rendered icons in pixels.
	IconSize = 64
)

var tints = map[model.StatusColor]color.NRGBA{
	model.StatusNormal:    {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	model.StatusDiskRead:  {R: 0x4f, G: 0xa3, B: 0xff, A: 0xff},
	model.StatusDiskWrite: {R: 0xff, G: 0x8a, B: 0x3d, A: 0xff},
}

var frameCache sync.Map

// CatFrame returns the tray icon for one frame in the given status color.
// Frame 0 is the sleeping pose.
func CatFrame(status model.StatusColor, frame int) (fyne.Resource, error) {
	if frame < 0 || frame >= FrameCount {
		return nil, fmt.Errorf("cat frame %d out of range [0,%d)", frame, FrameCount)
	}
	tint, ok := tints[status]
	if !ok {
		return nil, fmt.Errorf("cat frame: unknown status color %d", int(status))
	}

	name := fmt.Sprintf("cat-%s-%d.png", status, frame)
	if cached, ok := frameCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	img := renderCat(frame, IconSize, tint)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(name, buf.Bytes())
	frameCache.Store(name, resource)
	return resource, nil
}

// MustCatFrame returns a cat frame or panics on error.
func MustCatFrame(status model.StatusColor, frame int) fyne.Resource {
	resource, err := CatFrame(status, frame)
	if err != nil {
		panic(err)
	}
	return resource
}

// Logo returns the application icon.
func Logo() fyne.Resource {
	return MustCatFrame(model.StatusNormal, 1)
}
