package platform

import (
	"context"
	"fmt"
	"math"

	"runcat/internal/core/controller"
	"runcat/internal/core/model"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
)

// Metrics samples CPU load and disk counters through gopsutil.
type Metrics struct{}

// NewMetricsProvider returns the gopsutil-backed metrics source.
func NewMetricsProvider() *Metrics {
	return &Metrics{}
}

// CPUPercent returns total CPU utilization since the previous call, rounded to one decimal.
func (metrics *Metrics) CPUPercent(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, fmt.Errorf("getting cpu percent: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("getting cpu percent: %w", controller.ErrMetricsUnavailable)
	}
	return math.Round(percents[0]*10) / 10, nil
}

// DiskCounters returns cumulative read and write bytes over all block devices.
func (metrics *Metrics) DiskCounters(ctx context.Context) (model.DiskCounters, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return model.DiskCounters{}, fmt.Errorf("getting disk counters: %w", err)
	}
	if len(counters) == 0 {
		return model.DiskCounters{}, fmt.Errorf("getting disk counters: %w", controller.ErrMetricsUnavailable)
	}
	return sumDiskCounters(counters), nil
}

func sumDiskCounters(counters map[string]disk.IOCountersStat) model.DiskCounters {
	var total model.DiskCounters
	for _, stat := range counters {
		total.ReadBytes += stat.ReadBytes
		total.WriteBytes += stat.WriteBytes
	}
	return total
}
