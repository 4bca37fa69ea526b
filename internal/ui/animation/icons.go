package animation

import (
	"fmt"

	"runcat/internal/core/model"

	"fyne.io/fyne/v2"
)

// FrameLoader produces the icon for one frame in one status color.
type FrameLoader func(status model.StatusColor, frame int) (fyne.Resource, error)

// IconSet maps each status color to its frames. Frame 0 is the sleeping pose.
type IconSet struct {
	frames map[model.StatusColor][]fyne.Resource
	count  int
}

// LoadIconSet renders every frame for every status color up front.
func LoadIconSet(load FrameLoader, frameCount int) (*IconSet, error) {
	if frameCount < 2 {
		return nil, fmt.Errorf("load icon set: need a sleeping and at least one running frame, got %d", frameCount)
	}

	set := &IconSet{
		frames: make(map[model.StatusColor][]fyne.Resource, len(model.StatusColors)),
		count:  frameCount,
	}
	for _, status := range model.StatusColors {
		frames := make([]fyne.Resource, frameCount)
		for index := range frames {
			resource, err := load(status, index)
			if err != nil {
				return nil, fmt.Errorf("load icon set: %s frame %d: %w", status, index, err)
			}
			frames[index] = resource
		}
		set.frames[status] = frames
	}
	return set, nil
}

// FrameCount returns the number of frames per color.
func (set *IconSet) FrameCount() int {
	return set.count
}

// Frame returns the icon for the given color and frame.
// Unknown colors fall back to normal and out-of-range frames to the sleeping pose.
func (set *IconSet) Frame(status model.StatusColor, index int) fyne.Resource {
	frames, ok := set.frames[status]
	if !ok {
		frames = set.frames[model.StatusNormal]
	}
	if index < 0 || index >= len(frames) {
		index = 0
	}
	return frames[index]
}
