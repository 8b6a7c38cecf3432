package wechat

import "net/http"

// WeChat protocol defaults. The token URL is a path joined to the site base
// URL; the authorize URL is absolute because it lives on a different host
// (open.weixin.qq.com) than the API itself.
const (
	DefaultSite         = "https://api.weixin.qq.com"
	DefaultAuthorizeURL = "https://open.weixin.qq.com/connect/oauth2/authorize"
	DefaultTokenURL     = "/sns/oauth2/access_token"
	DefaultTokenMethod  = http.MethodGet
)

// ClientConfig is the immutable, fully merged configuration consumed by the
// authorize URL builder and the token exchanger. It is built fresh on every
// call by layering built-in defaults, process-wide Settings, and per-call
// overrides, later layers winning on conflicting keys.
//
// ClientConfig carries no validation: a missing AppID or Secret surfaces
// only when a token exchange is attempted.
type ClientConfig struct {
	// Site is the API base URL; TokenURL is resolved relative to it.
	Site string

	// AuthorizeURL is the absolute authorization endpoint.
	AuthorizeURL string

	// TokenURL is the token endpoint path under Site.
	TokenURL string

	// TokenMethod is the HTTP method for the token exchange. WeChat
	// requires GET, unlike the RFC 6749 POST.
	TokenMethod string

	// AppID is WeChat's name for the OAuth2 client identifier.
	AppID string

	// Secret is WeChat's name for the OAuth2 client secret.
	Secret string

	// RedirectURI is the registered callback URL.
	RedirectURI string

	// Params are extra request parameters attached to every request built
	// from this configuration. A "code" entry here acts as a pre-attached
	// authorization code for Exchange.
	Params map[string]string

	// Headers are extra request headers attached to the token request.
	Headers map[string]string
}

// Settings is one configuration layer: the process-wide values loaded once
// at startup, or a set of per-call overrides. Zero-valued fields are
// transparent and let the layer below show through; Params and Headers
// merge key-wise instead of replacing the whole map.
type Settings = ClientConfig

// defaultConfig returns the built-in defaults for the WeChat platform.
func defaultConfig() ClientConfig {
	return ClientConfig{
		Site:         DefaultSite,
		AuthorizeURL: DefaultAuthorizeURL,
		TokenURL:     DefaultTokenURL,
		TokenMethod:  DefaultTokenMethod,
	}
}

// resolveConfig merges configuration layers in priority order, later layers
// winning on conflicting keys. The merge is pure: no I/O, no validation.
func resolveConfig(layers ...ClientConfig) ClientConfig {
	var out ClientConfig
	for _, layer := range layers {
		out = mergeConfig(out, layer)
	}
	return out
}

// mergeConfig overlays layer on top of base. Scalar fields from layer win
// when non-empty; Params and Headers are merged key by key.
func mergeConfig(base, layer ClientConfig) ClientConfig {
	out := base
	if layer.Site != "" {
		out.Site = layer.Site
	}
	if layer.AuthorizeURL != "" {
		out.AuthorizeURL = layer.AuthorizeURL
	}
	if layer.TokenURL != "" {
		out.TokenURL = layer.TokenURL
	}
	if layer.TokenMethod != "" {
		out.TokenMethod = layer.TokenMethod
	}
	if layer.AppID != "" {
		out.AppID = layer.AppID
	}
	if layer.Secret != "" {
		out.Secret = layer.Secret
	}
	if layer.RedirectURI != "" {
		out.RedirectURI = layer.RedirectURI
	}
	out.Params = mergeStringMap(base.Params, layer.Params)
	out.Headers = mergeStringMap(base.Headers, layer.Headers)
	return out
}

// mergeStringMap returns a fresh map holding base overlaid with layer.
// The inputs are never mutated, so merged configurations stay independent
// of the layers they were built from.
func mergeStringMap(base, layer map[string]string) map[string]string {
	if len(base) == 0 && len(layer) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(layer))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range layer {
		out[k] = v
	}
	return out
}
