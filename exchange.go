package wechat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxResponseSize bounds provider response bodies. Token payloads are
// well under 10KB; 1MB is generous.
const maxResponseSize = 1 << 20

// Exchange performs the code-for-token exchange using the client's merged
// configuration. See ExchangeWithOverrides.
func (c *Client) Exchange(ctx context.Context, params url.Values, headers http.Header) (*AccessToken, error) {
	return c.ExchangeWithOverrides(ctx, Settings{}, params, headers)
}

// ExchangeWithOverrides exchanges an authorization code for an AccessToken,
// applying per-call configuration overrides on top of the client settings.
//
// The code is taken from params["code"] when present, falling back to a
// "code" entry pre-attached to the configuration's own parameter set. With
// no code from either source the call fails with KindMissingCode and no
// network request is made. A missing appid or secret fails with KindConfig,
// likewise before any request.
//
// The token request carries Accept: application/json plus any configured
// and caller headers, and the parameters code, grant_type, appid, secret,
// and redirect_uri merged over the remaining caller parameters; those five
// always win over same-named caller values. WeChat serves its token
// endpoint over GET, so the parameters travel in the query string.
//
// Transport and decode failures are fatal for the call; the client never
// retries internally.
func (c *Client) ExchangeWithOverrides(ctx context.Context, overrides Settings, params url.Values, headers http.Header) (*AccessToken, error) {
	cfg := c.ClientConfig(overrides)

	code := params.Get("code")
	if code == "" {
		code = cfg.Params["code"]
	}
	if code == "" {
		return nil, newError(KindMissingCode, "", "no authorization code in params or client state", nil)
	}

	if cfg.AppID == "" {
		return nil, newError(KindConfig, "", "appid must not be empty", nil)
	}
	if cfg.Secret == "" {
		return nil, newError(KindConfig, "", "secret must not be empty", nil)
	}

	q := url.Values{}
	for k, v := range cfg.Params {
		q.Set(k, v)
	}
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}

	// Forced parameters always win over same-named caller values.
	q.Set("code", code)
	q.Set("grant_type", "authorization_code")
	q.Set("appid", cfg.AppID)
	q.Set("secret", cfg.Secret)
	q.Set("redirect_uri", cfg.RedirectURI)

	hdr := http.Header{}
	for k, v := range cfg.Headers {
		hdr.Set(k, v)
	}
	for k, vs := range headers {
		for _, v := range vs {
			hdr.Set(k, v)
		}
	}
	hdr.Set("Accept", "application/json")

	body, err := c.doTokenRequest(ctx, cfg, q, hdr)
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

	token := normalizeToken(payload)
	c.recordCodeExchanged(ctx, cfg.AppID)
	c.logger.Debug("wechat token exchanged",
		"appid", cfg.AppID,
		"openid", token.OpenID(),
		"expires_in", token.ExpiresIn,
	)
	return token, nil
}

// doTokenRequest issues the token request with the configured method and
// returns the raw response body. WeChat uses GET with query parameters; a
// configuration that explicitly sets POST gets a form-encoded body instead.
func (c *Client) doTokenRequest(ctx context.Context, cfg ClientConfig, params url.Values, headers http.Header) ([]byte, error) {
	ctx, cancel := c.ensureContextTimeout(ctx)
	defer cancel()

	if err := c.waitRateLimit(ctx); err != nil {
		return nil, err
	}

	endpoint := tokenEndpoint(cfg)
	method := strings.ToUpper(cfg.TokenMethod)
	if method == "" {
		method = http.MethodGet
	}

	var req *http.Request
	var err error
	if method == http.MethodPost {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	}
	if err != nil {
		return nil, newError(KindTransport, "", fmt.Sprintf("build token request: %v", err), err)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	return c.do(req, "exchange_code")
}

// do sends the request, records provider API metrics, and returns the
// response body. Non-2xx responses and network failures map to
// KindTransport.
func (c *Client) do(req *http.Request, operation string) ([]byte, error) {
	masked := maskURL(req.URL.String())
	c.logger.Debug("provider request", "method", req.Method, "url", masked)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		werr := newError(KindTransport, "", fmt.Sprintf("%s %s: %v", req.Method, masked, err), err)
		c.recordProviderCall(req.Context(), operation, start, 0, werr)
		return nil, werr
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("provider response", "method", req.Method, "url", masked, "status", resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		werr := newError(KindTransport, "", fmt.Sprintf("read response body: %v", err), err)
		c.recordProviderCall(req.Context(), operation, start, resp.StatusCode, werr)
		return nil, werr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		preview := string(body)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		werr := newError(KindTransport, "", fmt.Sprintf("%s %s: HTTP %d: %s", req.Method, masked, resp.StatusCode, preview), nil)
		c.recordProviderCall(req.Context(), operation, start, resp.StatusCode, werr)
		return nil, werr
	}

	c.recordProviderCall(req.Context(), operation, start, resp.StatusCode, nil)
	return body, nil
}

// tokenEndpoint resolves the token URL against the site base URL. An
// absolute token URL is used as-is.
func tokenEndpoint(cfg ClientConfig) string {
	if strings.Contains(cfg.TokenURL, "://") {
		return cfg.TokenURL
	}
	return strings.TrimRight(cfg.Site, "/") + cfg.TokenURL
}

// decodePayload decodes a provider response into a generic string-keyed
// payload. WeChat wraps the token document in an extra JSON encoding layer,
// delivering it as a JSON-encoded string, so a first decode pass unwraps
// the string before the document itself is decoded. Plain JSON documents
// are accepted too.
func decodePayload(body []byte) (map[string]any, error) {
	doc := body
	var wrapped string
	if err := json.Unmarshal(body, &wrapped); err == nil {
		doc = []byte(wrapped)
	}

	var payload map[string]any
	if err := json.Unmarshal(doc, &payload); err != nil {
		preview := string(doc)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, newError(KindDecode, "", fmt.Sprintf("response is not a JSON object: %s", preview), err)
	}
	if payload == nil {
		return nil, newError(KindDecode, "", "response is an empty document", nil)
	}
	return payload, nil
}

// providerError maps an in-band WeChat error to *Error. WeChat reports
// failures with HTTP 200 and an errcode/errmsg pair in the payload.
func providerError(payload map[string]any) error {
	errcode := intField(payload, "errcode")
	if errcode == 0 {
		return nil
	}
	errmsg := stringField(payload, "errmsg")
	return newError(KindProvider, strconv.FormatInt(errcode, 10), errmsg, nil)
}
