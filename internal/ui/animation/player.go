package animation

import (
	"context"

	"runcat/internal/core/controller"

	"fyne.io/fyne/v2"
)

// Player turns controller events into tray icon and tooltip updates.
type Player struct {
	icons         *IconSet
	updateSprite  func(fyne.Resource)
	updateTooltip func(string)
	lastSprite    fyne.Resource
	lastTooltip   string
}

// NewPlayer creates a player. Either callback may be nil.
func NewPlayer(icons *IconSet, updateSprite func(fyne.Resource), updateTooltip func(string)) *Player {
	return &Player{
		icons:         icons,
		updateSprite:  updateSprite,
		updateTooltip: updateTooltip,
	}
}

// Run applies events until the channel closes or ctx is cancelled.
func (player *Player) Run(ctx context.Context, events <-chan controller.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			player.Apply(event)
		}
	}
}

// Apply pushes one event, skipping callbacks whose value did not change.
func (player *Player) Apply(event controller.Event) {
	sprite := player.icons.Frame(event.Color, event.Frame)
	if sprite != player.lastSprite && player.updateSprite != nil {
		player.updateSprite(sprite)
	}
	player.lastSprite = sprite

	if event.Tooltip != player.lastTooltip && player.updateTooltip != nil {
		player.updateTooltip(event.Tooltip)
	}
	player.lastTooltip = event.Tooltip
}
