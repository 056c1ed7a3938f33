package service

import (
	"time"

	"goblog/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var startTime = time.Now()

// Status is a snapshot of the running process and its host.
type Status struct {
	Uptime  uint64  `json:"uptime"`
	Cpu     float64 `json:"cpu"`
	Mem     Usage   `json:"mem"`
	Version string  `json:"version"`
}

// Usage is a current/total pair in bytes.
type Usage struct {
	Current uint64 `json:"current"`
	Total   uint64 `json:"total"`
}

// ServerService reports process status.
type ServerService struct{}

// GetStatus gathers uptime, cpu and memory usage. Collection failures are
// logged and leave the affected field zeroed.
func (s *ServerService) GetStatus(version string) *Status {
	status := &Status{
		Uptime:  uint64(time.Since(startTime).Seconds()),
		Version: version,
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	return status
}
