//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadOSRelease(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "os-release",
		"NAME=\"Fedora Linux\"\nPRETTY_NAME=\"Fedora Linux 40\"\nID=fedora\n")

	require.Equal(t, "Fedora Linux 40", readOSRelease(path))
}

func TestReadOSRelease_Missing(t *testing.T) {
	t.Parallel()

	require.Equal(t, unknown, readOSRelease(filepath.Join(t.TempDir(), "nope")))
}

func TestReadCPUModelAndCores(t *testing.T) {
	t.Parallel()

	cpuinfo := `processor	: 0
model name	: Test CPU @ 2.30GHz
processor	: 1
model name	: Test CPU @ 2.30GHz
`
	path := writeFile(t, t.TempDir(), "cpuinfo", cpuinfo)

	require.Equal(t, "Test CPU @ 2.30GHz", readCPUModel(path))
	require.Equal(t, "2", readCPUCores(path))
}

func TestReadMemory(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "meminfo",
		"MemTotal:       16384000 kB\nMemFree:         1024000 kB\n")

	require.Equal(t, "16000 MB", readMemory(path))
}

func TestReadPlatform(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "sys_vendor", "Test Vendor\n")
	writeFile(t, dir, "product_name", "Test Board\n")

	require.Equal(t, "Test Vendor Test Board", readPlatform(dir))
}

func TestReadPlatform_Missing(t *testing.T) {
	t.Parallel()

	require.Equal(t, unknown, readPlatform(filepath.Join(t.TempDir(), "dmi")))
}

func TestReadKernel(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, readKernel())
}
