// Package sysinfo describes the host a benchmark ran on. Reports embed one
// Snapshot per generation; values are descriptive strings, not parsed data.
package sysinfo

import "github.com/sirupsen/logrus"

// Snapshot is a point-in-time description of the host.
type Snapshot struct {
	OS       string
	Kernel   string
	NIC      string
	CPU      string
	CPUCores string
	Memory   string
	Platform string
}

// Prober answers the individual host queries. Probes may cache process-wide;
// host facts do not change mid-run.
type Prober interface {
	OS() string
	Kernel() string
	NIC() string
	CPU() string
	CPUCores() string
	Memory() string
	Platform() string
}

// NewProber returns the prober for the current platform.
func NewProber(log logrus.FieldLogger) Prober {
	return newPlatformProber(log.WithField("component", "sysinfo"))
}

// Capture runs every query on p and assembles a Snapshot.
func Capture(p Prober) Snapshot {
	return Snapshot{
		OS:       p.OS(),
		Kernel:   p.Kernel(),
		NIC:      p.NIC(),
		CPU:      p.CPU(),
		CPUCores: p.CPUCores(),
		Memory:   p.Memory(),
		Platform: p.Platform(),
	}
}
