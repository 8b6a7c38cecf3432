// Package wechat implements the OAuth 2.0 authorization code flow against
// WeChat (Weixin), a provider that deviates from RFC 6749 in three ways:
// it names the client credentials appid/secret instead of
// client_id/client_secret, it serves the token endpoint over GET instead of
// POST, and it delivers the token response body with an extra JSON encoding
// layer that needs an explicit second decode pass.
//
// The package covers client configuration, authorization URL construction,
// the code-for-token exchange, and normalization of the provider response
// into an AccessToken that exposes both the standard OAuth2 fields and
// WeChat extension fields such as openid and unionid.
//
// Example usage:
//
//	client, err := wechat.New(&wechat.Config{
//	    Settings: wechat.Settings{
//	        AppID:       os.Getenv("WECHAT_APP_ID"),
//	        Secret:      os.Getenv("WECHAT_SECRET"),
//	        RedirectURI: "https://example.com/callback",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Redirect the user to the authorization endpoint.
//	loginURL := client.AuthorizeURL(url.Values{"state": {state}})
//
//	// Exchange the callback code for a token.
//	token, err := client.Exchange(ctx, url.Values{"code": {code}}, nil)
//	if err != nil {
//	    // handle *wechat.Error
//	}
//	openID := token.OpenID()
//
// All operations are stateless and safe for concurrent use; ClientConfig
// and AccessToken values are immutable once built. The only blocking call
// is the outbound HTTP request, governed by the caller's context and the
// client's request timeout. The package never retries internally.
package wechat
