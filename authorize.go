package wechat

import "net/url"

// AuthorizeCodeURL builds the fully qualified authorization endpoint URL
// with an encoded query string. Extra parameters are merged first, then
// response_type, appid, and redirect_uri are unconditionally set from the
// configuration, so those three can never be overridden by caller input
// regardless of merge order.
//
// No network I/O is performed and there are no error cases; parsing the
// query string of the returned URL recovers every supplied parameter
// unchanged.
func (cfg ClientConfig) AuthorizeCodeURL(extra url.Values) string {
	q := url.Values{}
	for k, v := range cfg.Params {
		q.Set(k, v)
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Set(k, v)
		}
	}

	// Forced parameters always win over same-named caller values.
	q.Set("response_type", "code")
	q.Set("appid", cfg.AppID)
	q.Set("redirect_uri", cfg.RedirectURI)

	return cfg.AuthorizeURL + "?" + q.Encode()
}
