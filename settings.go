package wechat

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by LoadSettings.
const (
	EnvAppID        = "WECHAT_APP_ID"
	EnvSecret       = "WECHAT_SECRET"
	EnvRedirectURI  = "WECHAT_REDIRECT_URI"
	EnvSite         = "WECHAT_SITE"
	EnvAuthorizeURL = "WECHAT_AUTHORIZE_URL"
	EnvTokenURL     = "WECHAT_TOKEN_URL"
	EnvTokenMethod  = "WECHAT_TOKEN_METHOD"
)

// LoadSettings reads process-wide settings from the environment, loading a
// .env file first when one is present in the working directory. Unset
// variables leave the corresponding field empty so the built-in defaults
// show through at merge time.
//
// LoadSettings is meant to be called once at startup; the returned value is
// treated as immutable thereafter.
func LoadSettings() Settings {
	// A missing .env file is not an error; the environment may be
	// populated by the orchestrator instead.
	_ = godotenv.Load()

	return Settings{
		AppID:        os.Getenv(EnvAppID),
		Secret:       os.Getenv(EnvSecret),
		RedirectURI:  os.Getenv(EnvRedirectURI),
		Site:         os.Getenv(EnvSite),
		AuthorizeURL: os.Getenv(EnvAuthorizeURL),
		TokenURL:     os.Getenv(EnvTokenURL),
		TokenMethod:  os.Getenv(EnvTokenMethod),
	}
}

// settingsFile mirrors Settings for YAML decoding.
type settingsFile struct {
	AppID        string            `yaml:"app_id"`
	Secret       string            `yaml:"secret"`
	RedirectURI  string            `yaml:"redirect_uri"`
	Site         string            `yaml:"site"`
	AuthorizeURL string            `yaml:"authorize_url"`
	TokenURL     string            `yaml:"token_url"`
	TokenMethod  string            `yaml:"token_method"`
	Params       map[string]string `yaml:"params"`
	Headers      map[string]string `yaml:"headers"`
}

// LoadSettingsFile reads process-wide settings from a YAML file.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	return Settings{
		AppID:        f.AppID,
		Secret:       f.Secret,
		RedirectURI:  f.RedirectURI,
		Site:         f.Site,
		AuthorizeURL: f.AuthorizeURL,
		TokenURL:     f.TokenURL,
		TokenMethod:  f.TokenMethod,
		Params:       f.Params,
		Headers:      f.Headers,
	}, nil
}
