//go:build linux

package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const unknown = "unknown"

// linuxProber reads host facts from procfs, sysfs and uname. Every query is
// resolved once and cached for the process lifetime.
type linuxProber struct {
	log logrus.FieldLogger

	once  sync.Once
	facts Snapshot
}

func newPlatformProber(log logrus.FieldLogger) Prober {
	return &linuxProber{log: log}
}

func (p *linuxProber) probe() {
	p.once.Do(func() {
		p.facts = Snapshot{
			OS:       readOSRelease("/etc/os-release"),
			Kernel:   readKernel(),
			NIC:      readNICs("/sys/class/net"),
			CPU:      readCPUModel("/proc/cpuinfo"),
			CPUCores: readCPUCores("/proc/cpuinfo"),
			Memory:   readMemory("/proc/meminfo"),
			Platform: readPlatform("/sys/class/dmi/id"),
		}
		p.log.WithFields(logrus.Fields{
			"os":     p.facts.OS,
			"kernel": p.facts.Kernel,
		}).Debug("probed host environment")
	})
}

func (p *linuxProber) OS() string       { p.probe(); return p.facts.OS }
func (p *linuxProber) Kernel() string   { p.probe(); return p.facts.Kernel }
func (p *linuxProber) NIC() string      { p.probe(); return p.facts.NIC }
func (p *linuxProber) CPU() string      { p.probe(); return p.facts.CPU }
func (p *linuxProber) CPUCores() string { p.probe(); return p.facts.CPUCores }
func (p *linuxProber) Memory() string   { p.probe(); return p.facts.Memory }
func (p *linuxProber) Platform() string { p.probe(); return p.facts.Platform }

// readOSRelease returns PRETTY_NAME from an os-release file.
func readOSRelease(path string) string {
	f, err := os.Open(path) //nolint:gosec // G304: fixed system path
	if err != nil {
		return unknown
	}
	defer f.Close() //nolint:errcheck // read-only handle

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(value, `"`)
		}
	}
	return unknown
}

func readKernel() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return unknown
	}
	return unix.ByteSliceToString(uts.Release[:])
}

// readNICs lists non-loopback, non-virtual network interfaces.
func readNICs(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return unknown
	}

	var nics []string
	for _, entry := range entries {
		name := entry.Name()
		if name == "lo" {
			continue
		}
		// Physical devices have a device symlink; virtual ones do not.
		if _, err := os.Stat(filepath.Join(dir, name, "device")); err != nil {
			continue
		}
		nics = append(nics, name)
	}

	if len(nics) == 0 {
		return unknown
	}
	return strings.Join(nics, ", ")
}

func readCPUModel(path string) string {
	value := readCPUInfoField(path, "model name")
	if value == "" {
		return unknown
	}
	return value
}

func readCPUCores(path string) string {
	f, err := os.Open(path) //nolint:gosec // G304: fixed system path
	if err != nil {
		return unknown
	}
	defer f.Close() //nolint:errcheck // read-only handle

	cores := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "processor") {
			cores++
		}
	}
	if cores == 0 {
		return unknown
	}
	return strconv.Itoa(cores)
}

func readCPUInfoField(path, field string) string {
	f, err := os.Open(path) //nolint:gosec // G304: fixed system path
	if err != nil {
		return ""
	}
	defer f.Close() //nolint:errcheck // read-only handle

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(name) == field {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// readMemory returns MemTotal rendered in whole megabytes.
func readMemory(path string) string {
	f, err := os.Open(path) //nolint:gosec // G304: fixed system path
	if err != nil {
		return unknown
	}
	defer f.Close() //nolint:errcheck // read-only handle

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			break
		}
		return fmt.Sprintf("%d MB", kb/1024)
	}
	return unknown
}

// readPlatform joins the DMI vendor and product names.
func readPlatform(dir string) string {
	vendor := readTrimmed(filepath.Join(dir, "sys_vendor"))
	product := readTrimmed(filepath.Join(dir, "product_name"))

	switch {
	case vendor != "" && product != "":
		return vendor + " " + product
	case vendor != "":
		return vendor
	case product != "":
		return product
	default:
		return unknown
	}
}

func readTrimmed(path string) string {
	data, err := os.ReadFile(path) //nolint:gosec // G304: fixed system path
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
