package wechat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv(EnvAppID, "wx-env-app")
	t.Setenv(EnvSecret, "env-secret")
	t.Setenv(EnvRedirectURI, "https://env.example/cb")
	t.Setenv(EnvTokenMethod, "GET")
	t.Setenv(EnvSite, "")

	s := LoadSettings()
	if s.AppID != "wx-env-app" {
		t.Errorf("AppID = %q", s.AppID)
	}
	if s.Secret != "env-secret" {
		t.Errorf("Secret = %q", s.Secret)
	}
	if s.RedirectURI != "https://env.example/cb" {
		t.Errorf("RedirectURI = %q", s.RedirectURI)
	}
	if s.TokenMethod != "GET" {
		t.Errorf("TokenMethod = %q", s.TokenMethod)
	}
	// Unset variables stay empty so defaults show through at merge time.
	if s.Site != "" {
		t.Errorf("Site = %q, want empty", s.Site)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wechat.yaml")
	data := []byte(`
app_id: wx-file-app
secret: file-secret
redirect_uri: https://file.example/cb
site: https://proxy.internal
params:
  scope: snsapi_userinfo
headers:
  X-Trace: abc
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile() error = %v", err)
	}
	if s.AppID != "wx-file-app" || s.Secret != "file-secret" {
		t.Errorf("credentials = %q/%q", s.AppID, s.Secret)
	}
	if s.Site != "https://proxy.internal" {
		t.Errorf("Site = %q", s.Site)
	}
	if s.Params["scope"] != "snsapi_userinfo" {
		t.Errorf("Params = %v", s.Params)
	}
	if s.Headers["X-Trace"] != "abc" {
		t.Errorf("Headers = %v", s.Headers)
	}
}

func TestLoadSettingsFileErrors(t *testing.T) {
	if _, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file: want error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettingsFile(path); err == nil {
		t.Error("malformed file: want error")
	}
}

func TestLoadedSettingsMergeUnderOverrides(t *testing.T) {
	t.Setenv(EnvRedirectURI, "Y")

	c := New(&Config{Settings: LoadSettings()})
	cfg := c.ClientConfig(Settings{RedirectURI: "X"})
	if cfg.RedirectURI != "X" {
		t.Errorf("RedirectURI = %q, want call-site override X", cfg.RedirectURI)
	}
}
