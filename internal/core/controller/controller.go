package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"runcat/internal/core/model"

	"github.com/charmbracelet/log"
)

// ErrMetricsUnavailable indicates the metrics source cannot report on this system.
var ErrMetricsUnavailable = errors.New("metrics unavailable")

// minInterval bounds how fast the loop may re-arm.
const minInterval = 10 * time.Millisecond

// MetricsProvider samples system load.
type MetricsProvider interface {
	CPUPercent(ctx context.Context) (float64, error)
	DiskCounters(ctx context.Context) (model.DiskCounters, error)
}

// Options contains runtime options for Controller.
type Options struct {
	FrameCount int
}

// Controller drives the tray animation from CPU and disk samples.
type Controller struct {
	mu       sync.Mutex
	config   model.ControllerConfig
	options  Options
	metrics  MetricsProvider
	state    State
	events   []chan Event
	cancel   context.CancelFunc
	done     chan struct{}
	running  bool
	lastErrs map[string]string
}

// New creates a Controller with the provided configuration.
func New(config model.ControllerConfig, options Options, metrics MetricsProvider) *Controller {
	if options.FrameCount <= 0 {
		options.FrameCount = 1
	}
	return &Controller{
		config:   config,
		options:  options,
		metrics:  metrics,
		state:    NewState(),
		lastErrs: make(map[string]string),
	}
}

// UpdateConfig replaces the runtime configuration. It takes effect on the next tick.
func (controller *Controller) UpdateConfig(config model.ControllerConfig) {
	controller.mu.Lock()
	controller.config = config
	controller.mu.Unlock()
}

// Config returns the active configuration.
func (controller *Controller) Config() model.ControllerConfig {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.config
}

// State returns a snapshot of the animation state.
func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	controller.events = append(controller.events, ch)
	controller.mu.Unlock()
	return ch
}

// Start launches the tick loop. The first tick fires immediately.
func (controller *Controller) Start(ctx context.Context) {
	controller.mu.Lock()
	if controller.running {
		controller.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	controller.cancel = cancel
	controller.done = make(chan struct{})
	controller.running = true
	done := controller.done
	controller.mu.Unlock()

	go controller.run(runCtx, done)
}

// Stop terminates the tick loop and closes observers.
func (controller *Controller) Stop() {
	controller.mu.Lock()
	if !controller.running {
		controller.mu.Unlock()
		return
	}
	controller.running = false
	controller.cancel()
	done := controller.done
	controller.mu.Unlock()

	<-done

	controller.mu.Lock()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Tick samples the metrics, advances the animation and notifies observers.
func (controller *Controller) Tick(ctx context.Context) Event {
	controller.mu.Lock()
	config := controller.config
	lastPercent := controller.state.CPUPercent
	controller.mu.Unlock()

	percent := lastPercent
	if sampled, err := controller.metrics.CPUPercent(ctx); err != nil {
		controller.logSampleError("cpu", err)
	} else {
		controller.clearSampleError("cpu")
		percent = sampled
	}

	sampleDisk := func() (model.DiskCounters, error) {
		counters, err := controller.metrics.DiskCounters(ctx)
		if err != nil {
			controller.logSampleError("disk", err)
			return counters, err
		}
		controller.clearSampleError("disk")
		return counters, nil
	}

	controller.mu.Lock()
	event := controller.state.Step(config, controller.options.FrameCount, percent, sampleDisk)
	controller.mu.Unlock()

	event.At = time.Now()
	controller.emit(event)
	return event
}

func (controller *Controller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			event := controller.Tick(ctx)
			interval := event.Interval
			if interval < minInterval {
				interval = minInterval
			}
			timer.Reset(interval)
		}
	}
}

// emit keeps only the newest event in a full channel.
func (controller *Controller) emit(event Event) {
	controller.mu.Lock()
	events := append([]chan Event(nil), controller.events...)
	controller.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}

// logSampleError logs a failure once until the source recovers or the message changes.
func (controller *Controller) logSampleError(source string, err error) {
	controller.mu.Lock()
	previous := controller.lastErrs[source]
	controller.lastErrs[source] = err.Error()
	controller.mu.Unlock()

	if previous == err.Error() {
		return
	}
	if errors.Is(err, ErrMetricsUnavailable) {
		log.Warn("metrics source unavailable", "source", source, "err", err)
		return
	}
	log.Debug("metrics sample failed", "source", source, "err", err)
}

func (controller *Controller) clearSampleError(source string) {
	controller.mu.Lock()
	delete(controller.lastErrs, source)
	controller.mu.Unlock()
}
