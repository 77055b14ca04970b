package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(TokenEnv, " env-token ")

	v := viper.New()
	v.Set("gravatar.baseURL", "http://localhost:9999")
	v.Set("gravatar.timeout", "3s")

	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "env-token", settings.Token)
	assert.Equal(t, "http://localhost:9999", settings.BaseURL)
	assert.Equal(t, 3*time.Second, settings.Timeout)
}

func TestLoadFromCredentialsFile(t *testing.T) {
	t.Setenv(TokenEnv, "")
	t.Setenv(ConfigPathEnv, writeFile(t, `{"access_token": "file-token"}`))

	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "file-token", settings.Token)
}

func TestTokenFromFile(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     string
		wantErr  bool
	}{
		{name: "access_token", contents: `{"access_token": "a"}`, want: "a"},
		{name: "token fallback", contents: `{"token": "b"}`, want: "b"},
		{name: "access_token wins", contents: `{"access_token": "a", "token": "b"}`, want: "a"},
		{name: "blank access_token falls back", contents: `{"access_token": "  ", "token": " b "}`, want: "b"},
		{name: "empty object", contents: `{}`, wantErr: true},
		{name: "missing key", contents: `{"other": "x"}`, wantErr: true},
		{name: "invalid json", contents: `not json`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := TokenFromFile(writeFile(t, tt.contents))
			if tt.wantErr {
				assert.True(t, stderrors.Is(err, errors.ErrConfiguration))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestTokenFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	token, err := TokenFromFile(path)
	assert.Empty(t, token)
	assert.True(t, stderrors.Is(err, errors.ErrConfiguration))
	assert.Contains(t, err.Error(), path)
}

func TestLoadWithoutCredentials(t *testing.T) {
	t.Setenv(TokenEnv, "")
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "absent.json"))

	settings, err := Load(viper.New())
	assert.Nil(t, settings)
	assert.True(t, stderrors.Is(err, errors.ErrConfiguration))
}
