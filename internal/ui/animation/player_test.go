package animation

import (
	"context"
	"testing"

	"runcat/internal/core/controller"
	"runcat/internal/core/model"

	"fyne.io/fyne/v2"
)

func TestPlayerSkipsUnchangedUpdates(t *testing.T) {
	set, err := LoadIconSet(stubLoader, 6)
	if err != nil {
		t.Fatal(err)
	}

	var sprites []string
	var tooltips []string
	player := NewPlayer(set, func(resource fyne.Resource) {
		sprites = append(sprites, resource.Name())
	}, func(text string) {
		tooltips = append(tooltips, text)
	})

	player.Apply(controller.Event{Frame: 0, Tooltip: "CPU: 3%"})
	player.Apply(controller.Event{Frame: 0, Tooltip: "CPU: 3%"})
	player.Apply(controller.Event{Frame: 0, Tooltip: "CPU: 4%"})
	player.Apply(controller.Event{Frame: 2, Color: model.StatusDiskWrite, Tooltip: "CPU: 4%"})

	expectedSprites := []string{"normal-0", "disk_write-2"}
	if len(sprites) != len(expectedSprites) || sprites[0] != expectedSprites[0] || sprites[1] != expectedSprites[1] {
		t.Errorf("sprites = %v, expected %v", sprites, expectedSprites)
	}
	if len(tooltips) != 2 || tooltips[1] != "CPU: 4%" {
		t.Errorf("tooltips = %v", tooltips)
	}
}

func TestPlayerRunStopsWhenChannelCloses(t *testing.T) {
	set, err := LoadIconSet(stubLoader, 6)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	player := NewPlayer(set, func(fyne.Resource) { count++ }, nil)

	events := make(chan controller.Event, 3)
	events <- controller.Event{Frame: 1}
	events <- controller.Event{Frame: 2}
	events <- controller.Event{Frame: 3}
	close(events)

	player.Run(context.Background(), events)
	if count != 3 {
		t.Errorf("expected 3 sprite updates, got %d", count)
	}
}

func TestPlayerRunStopsOnCancel(t *testing.T) {
	set, err := LoadIconSet(stubLoader, 6)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewPlayer(set, nil, nil).Run(ctx, make(chan controller.Event))
}
