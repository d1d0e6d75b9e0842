package testcases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "testcases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ParsesEntriesInOrder(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
- name: phy2phy_tput
  params:
    Deployment: p2p
    Mode: rfc2544
- name: pvp_tput
`)

	tcs, err := NewLoader(logrus.New(), path).Load()
	require.NoError(t, err)
	require.Len(t, tcs, 2)

	require.Equal(t, "phy2phy_tput", tcs[0].Name)
	require.Equal(t, "rfc2544", tcs[0].Params["Mode"])
	require.Equal(t, "pvp_tput", tcs[1].Name)
	require.Empty(t, tcs[1].Params)
}

func TestLoad_NameRequired(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
- name: phy2phy_tput
- params:
    Mode: rfc2544
`)

	_, err := NewLoader(logrus.New(), path).Load()
	require.ErrorIs(t, err, errNameRequired)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(logrus.New(), filepath.Join(t.TempDir(), "nope.yaml")).Load()
	require.Error(t, err)
}

func TestFields_SortedByKey(t *testing.T) {
	t.Parallel()

	tc := &TestCase{
		Name:   "phy2phy_tput",
		Params: map[string]string{"zeta": "z", "alpha": "a", "mid": "m"},
	}

	require.Equal(t, []Param{
		{Name: "alpha", Value: "a"},
		{Name: "mid", Value: "m"},
		{Name: "zeta", Value: "z"},
	}, tc.Fields())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, (&TestCase{}).Empty())
	require.False(t, (&TestCase{Name: "phy2phy_tput"}).Empty())
}
