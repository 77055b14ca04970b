/*
Package config resolves the settings the server needs at startup, most
importantly the Gravatar access token.
*/
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
)

const (
	TokenEnv      = "GRAVATAR_API_KEY"
	ConfigPathEnv = "GRAVATAR_CONFIG_PATH"

	DefaultCredentialsPath = "config.json"
)

/*
Settings is the read-only configuration shared by every request.
*/
type Settings struct {
	Token     string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

/*
Load reads Settings from v. The token is looked up in the gravatar.token key
(bound to GRAVATAR_API_KEY) and then in the JSON credentials file. A missing
token is a configuration error.
*/
func Load(v *viper.Viper) (*Settings, error) {
	if v == nil {
		v = viper.GetViper()
	}

	_ = v.BindEnv("gravatar.token", TokenEnv)
	_ = v.BindEnv("gravatar.credentials", ConfigPathEnv)

	token := strings.TrimSpace(v.GetString("gravatar.token"))

	if token == "" {
		path := v.GetString("gravatar.credentials")
		if path == "" {
			path = DefaultCredentialsPath
		}

		var err error
		if token, err = TokenFromFile(path); err != nil {
			return nil, err
		}
	}

	return &Settings{
		Token:     token,
		BaseURL:   v.GetString("gravatar.baseURL"),
		UserAgent: v.GetString("gravatar.userAgent"),
		Timeout:   v.GetDuration("gravatar.timeout"),
	}, nil
}

/*
TokenFromFile reads a JSON credentials file holding either an access_token or
a token key.
*/
func TokenFromFile(path string) (string, error) {
	cv := viper.New()
	cv.SetConfigFile(path)
	cv.SetConfigType("json")

	if err := cv.ReadInConfig(); err != nil {
		return "", errors.Configuration("credentials file not readable: "+path, err)
	}

	token := strings.TrimSpace(cv.GetString("access_token"))
	if token == "" {
		token = strings.TrimSpace(cv.GetString("token"))
	}

	if token == "" {
		return "", errors.Configuration("missing 'access_token' in credentials file " + path)
	}

	return token, nil
}
