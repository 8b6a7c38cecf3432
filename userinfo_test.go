package wechat

import (
	"context"
	"net/http"
	"testing"
)

func userToken() *AccessToken {
	return normalizeToken(map[string]any{
		"access_token": "T",
		"openid":       "O1",
	})
}

func TestGetUserInfo(t *testing.T) {
	srv, _, last := newTokenServer(t, http.StatusOK,
		`{"openid":"O1","unionid":"U1","nickname":"Ada","headimgurl":"https://img.example/a.png","province":"Guangdong","city":"Shenzhen","country":"CN","privilege":["chinaunicom"]}`)
	c := newTestClient(srv, validSettings())

	info, err := c.GetUserInfo(context.Background(), userToken(), "")
	if err != nil {
		t.Fatalf("GetUserInfo() error = %v", err)
	}

	req := *last
	q := req.URL.Query()
	if q.Get("access_token") != "T" || q.Get("openid") != "O1" {
		t.Errorf("query = %v", q)
	}
	if q.Get("lang") != "zh_CN" {
		t.Errorf("lang = %q, want default zh_CN", q.Get("lang"))
	}

	if info.OpenID != "O1" || info.UnionID != "U1" {
		t.Errorf("ids = %q/%q", info.OpenID, info.UnionID)
	}
	if info.Nickname != "Ada" {
		t.Errorf("Nickname = %q", info.Nickname)
	}
	if info.HeadImgURL != "https://img.example/a.png" {
		t.Errorf("HeadImgURL = %q", info.HeadImgURL)
	}
	if len(info.Privilege) != 1 || info.Privilege[0] != "chinaunicom" {
		t.Errorf("Privilege = %v", info.Privilege)
	}
	if info.Raw["country"] != "CN" {
		t.Errorf("Raw = %v", info.Raw)
	}
}

func TestGetUserInfoLang(t *testing.T) {
	srv, _, last := newTokenServer(t, http.StatusOK, `{"openid":"O1"}`)
	c := newTestClient(srv, validSettings())

	if _, err := c.GetUserInfo(context.Background(), userToken(), "en"); err != nil {
		t.Fatalf("GetUserInfo() error = %v", err)
	}
	if got := (*last).URL.Query().Get("lang"); got != "en" {
		t.Errorf("lang = %q, want en", got)
	}
}

func TestGetUserInfoEmptyToken(t *testing.T) {
	srv, calls, _ := newTokenServer(t, http.StatusOK, `{}`)
	c := newTestClient(srv, validSettings())

	if _, err := c.GetUserInfo(context.Background(), nil, ""); !IsKind(err, KindConfig) {
		t.Errorf("nil token error = %v, want KindConfig", err)
	}
	if _, err := c.GetUserInfo(context.Background(), &AccessToken{}, ""); !IsKind(err, KindConfig) {
		t.Errorf("empty token error = %v, want KindConfig", err)
	}
	if *calls != 0 {
		t.Errorf("network calls = %d, want 0", *calls)
	}
}

func TestGetUserInfoProviderError(t *testing.T) {
	srv, _, _ := newTokenServer(t, http.StatusOK, `{"errcode":42001,"errmsg":"access_token expired"}`)
	c := newTestClient(srv, validSettings())

	_, err := c.GetUserInfo(context.Background(), userToken(), "")
	if !IsKind(err, KindProvider) {
		t.Fatalf("GetUserInfo() error = %v, want KindProvider", err)
	}
}
