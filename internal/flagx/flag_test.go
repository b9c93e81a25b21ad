package flagx

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		boolFlags    []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://api"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-a", "http://api"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "double dash matches single dash name",
			args:         []string{"--config=first.json", "--d", "250"},
			allowedFlags: []string{"-config", "-d"},
			want:         []string{"--config=first.json", "--d", "250"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next flag is not taken as value",
			args:         []string{"-v", "-d", "100"},
			allowedFlags: []string{"-v", "-d"},
			want:         []string{"-v", "-d", "100"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "bool flag does not take the next token",
			args:         []string{"-v", "foo", "-a", "http://x"},
			allowedFlags: []string{"-v", "-a"},
			boolFlags:    []string{"-v"},
			want:         []string{"-v", "-a", "http://x"},
		},
		{
			name:         "bool flag with explicit value",
			args:         []string{"--v=false", "-a", "http://x"},
			allowedFlags: []string{"-v", "-a"},
			boolFlags:    []string{"-v"},
			want:         []string{"--v=false", "-a", "http://x"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags, tt.boolFlags...))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/p/short.json", ConfigPath([]string{"-c", "/p/short.json"}))
	assert.Equal(t, "/p/long.json", ConfigPath([]string{"-a", "x", "-config", "/p/long.json"}))
	assert.Equal(t, "/p/2.json", ConfigPath([]string{"-c", "/p/1.json", "-config", "/p/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
	assert.Empty(t, ConfigPath(nil))
}

type sample struct {
	Addr     string   `json:"addr"`
	Interval Duration `json:"interval"`
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadJSON(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var s sample
		require.NoError(t, LoadJSON(writeFile(t, `{"addr":"x","interval":"250ms"}`), &s))
		assert.Equal(t, sample{Addr: "x", Interval: Duration(250 * time.Millisecond)}, s)
	})

	t.Run("unknown key", func(t *testing.T) {
		var s sample
		require.Error(t, LoadJSON(writeFile(t, `{"adr":"x"}`), &s))
	})

	t.Run("missing file", func(t *testing.T) {
		var s sample
		require.ErrorIs(t, LoadJSON(filepath.Join(t.TempDir(), "none.json"), &s), os.ErrNotExist)
	})
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1.5s"`), &d))
	assert.Equal(t, Duration(1500*time.Millisecond), d)

	require.NoError(t, json.Unmarshal([]byte(`1000000`), &d))
	assert.Equal(t, Duration(time.Millisecond), d)

	require.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	require.Error(t, json.Unmarshal([]byte(`true`), &d))

	b, err := json.Marshal(Duration(300 * time.Millisecond))
	require.NoError(t, err)
	assert.JSONEq(t, `"300ms"`, string(b))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(p, []byte("FLAGX_TEST_A=from-file\nFLAGX_TEST_B=from-file\n"), 0o600))

	t.Setenv("FLAGX_TEST_B", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("FLAGX_TEST_A") })

	require.NoError(t, LoadDotEnv(p, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("FLAGX_TEST_A"))
	assert.Equal(t, "from-env", os.Getenv("FLAGX_TEST_B"), "existing variables win")
}
