package wechat

import (
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizeURLForcedParams(t *testing.T) {
	c := New(&Config{Settings: Settings{
		AppID:       "wx-app",
		RedirectURI: "https://example.com/cb",
	}})

	tests := []struct {
		name  string
		extra url.Values
	}{
		{name: "no extras", extra: nil},
		{name: "plain extras", extra: url.Values{"scope": {"snsapi_userinfo"}, "state": {"s1"}}},
		{
			name: "conflicting extras cannot override forced params",
			extra: url.Values{
				"response_type": {"token"},
				"appid":         {"evil"},
				"redirect_uri":  {"https://attacker.example"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(c.AuthorizeURL(tt.extra))
			if err != nil {
				t.Fatalf("AuthorizeURL produced unparseable URL: %v", err)
			}
			q := u.Query()
			if got := q.Get("response_type"); got != "code" {
				t.Errorf("response_type = %q, want code", got)
			}
			if got := q.Get("appid"); got != "wx-app" {
				t.Errorf("appid = %q, want wx-app", got)
			}
			if got := q.Get("redirect_uri"); got != "https://example.com/cb" {
				t.Errorf("redirect_uri = %q", got)
			}
		})
	}
}

func TestAuthorizeURLRoundTrip(t *testing.T) {
	c := New(&Config{Settings: Settings{
		AppID:       "wx-app",
		RedirectURI: "https://example.com/cb?next=/home",
	}})
	extra := url.Values{
		"scope": {"snsapi_login"},
		"state": {"abc 123/%"},
		"lang":  {"zh_CN"},
	}

	raw := c.AuthorizeURL(extra)
	if !strings.HasPrefix(raw, DefaultAuthorizeURL+"?") {
		t.Fatalf("URL %q does not start with authorize endpoint", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	for k, vs := range extra {
		if got := q.Get(k); got != vs[0] {
			t.Errorf("query[%s] = %q, want %q", k, got, vs[0])
		}
	}
	if got := q.Get("redirect_uri"); got != "https://example.com/cb?next=/home" {
		t.Errorf("redirect_uri round trip = %q", got)
	}
}

func TestAuthorizeURLIncludesConfiguredParams(t *testing.T) {
	c := New(&Config{Settings: Settings{
		AppID:       "wx-app",
		RedirectURI: "https://example.com/cb",
		Params:      map[string]string{"scope": "snsapi_base"},
	}})

	u, err := url.Parse(c.AuthorizeURL(nil))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := u.Query().Get("scope"); got != "snsapi_base" {
		t.Errorf("scope = %q, want snsapi_base", got)
	}
}

func TestAuthorizeURLEndpointOverride(t *testing.T) {
	c := New(&Config{Settings: Settings{
		AppID:        "wx-app",
		RedirectURI:  "https://example.com/cb",
		AuthorizeURL: "https://open.weixin.qq.com/connect/qrconnect",
	}})

	raw := c.AuthorizeURL(nil)
	if !strings.HasPrefix(raw, "https://open.weixin.qq.com/connect/qrconnect?") {
		t.Errorf("URL = %q, want qrconnect endpoint", raw)
	}
}
