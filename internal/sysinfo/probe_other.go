//go:build !linux

package sysinfo

import (
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
)

// fallbackProber covers platforms without procfs/sysfs. Only the OS name and
// core count are known; everything else reports unknown.
type fallbackProber struct {
	log logrus.FieldLogger
}

func newPlatformProber(log logrus.FieldLogger) Prober {
	log.WithField("goos", runtime.GOOS).Debug("no native prober for platform, using fallback")
	return &fallbackProber{log: log}
}

func (p *fallbackProber) OS() string       { return runtime.GOOS + "/" + runtime.GOARCH }
func (p *fallbackProber) Kernel() string   { return "unknown" }
func (p *fallbackProber) NIC() string      { return "unknown" }
func (p *fallbackProber) CPU() string      { return "unknown" }
func (p *fallbackProber) CPUCores() string { return strconv.Itoa(runtime.NumCPU()) }
func (p *fallbackProber) Memory() string   { return "unknown" }
func (p *fallbackProber) Platform() string { return "unknown" }
