package wechat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// UserInfo is the user profile returned by WeChat's sns/userinfo endpoint.
// Raw preserves the complete provider payload, including any fields not
// promoted here.
type UserInfo struct {
	// OpenID is the user's identifier within this application.
	OpenID string

	// UnionID is the user's identifier across applications of the same
	// open platform account, when available.
	UnionID string

	// Nickname is the user's display name.
	Nickname string

	// HeadImgURL is the profile picture URL.
	HeadImgURL string

	// Province, City, and Country locate the user's declared region.
	Province string
	City     string
	Country  string

	// Privilege lists WeChat privilege tags.
	Privilege []string

	// Raw is the full decoded provider payload.
	Raw map[string]any
}

// GetUserInfo retrieves the user's profile using an exchanged token. The
// request requires the snsapi_userinfo scope; lang selects the language of
// the text fields (e.g. "zh_CN", "en") and defaults to "zh_CN" when empty.
func (c *Client) GetUserInfo(ctx context.Context, token *AccessToken, lang string) (*UserInfo, error) {
	if token == nil || token.AccessToken == "" {
		return nil, newError(KindConfig, "", "token must not be empty", nil)
	}
	if lang == "" {
		lang = "zh_CN"
	}

	cfg := c.ClientConfig(Settings{})

	q := url.Values{}
	q.Set("access_token", token.AccessToken)
	q.Set("openid", token.OpenID())
	q.Set("lang", lang)

	ctx, cancel := c.ensureContextTimeout(ctx)
	defer cancel()

	if err := c.waitRateLimit(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/sns/userinfo?%s", strings.TrimRight(cfg.Site, "/"), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newError(KindTransport, "", fmt.Sprintf("build userinfo request: %v", err), err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, "get_user_info")
	if err != nil {
		return nil, err
	}

	payload, err := decodePayload(body)
	if err != nil {
		return nil, err
	}
	if err := providerError(payload); err != nil {
		return nil, err
	}

	info := &UserInfo{
		OpenID:     stringField(payload, "openid"),
		UnionID:    stringField(payload, "unionid"),
		Nickname:   stringField(payload, "nickname"),
		HeadImgURL: stringField(payload, "headimgurl"),
		Province:   stringField(payload, "province"),
		City:       stringField(payload, "city"),
		Country:    stringField(payload, "country"),
		Raw:        payload,
	}
	if vs, ok := payload["privilege"].([]any); ok {
		for _, v := range vs {
			if s, ok := v.(string); ok {
				info.Privilege = append(info.Privilege, s)
			}
		}
	}

	c.logger.Debug("wechat userinfo retrieved", "openid", info.OpenID, "nickname", info.Nickname)
	return info, nil
}
