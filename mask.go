package wechat

import (
	"net/url"
	"sort"
	"strings"
)

// sensitiveKeys lists substrings that mark a query parameter as a
// credential whose value must be masked before logging.
var sensitiveKeys = []string{"token", "secret", "code", "key"}

// maskValue masks a credential value for safe display: the first 4
// characters followed by "****", or "****" alone for short values.
// Empty input stays empty.
func maskValue(s string) string {
	if s == "" {
		return ""
	}
	if len(s) >= 4 {
		return s[:4] + "****"
	}
	return "****"
}

// maskSensitive masks value when key contains a sensitive substring
// (case-insensitive); other values pass through unchanged. Unlike
// maskValue, an empty sensitive value becomes "****" so the log still
// shows the key was present.
func maskSensitive(key, value string) string {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			if value == "" {
				return "****"
			}
			return maskValue(value)
		}
	}
	return value
}

// maskURL masks sensitive query parameter values in a URL for logging.
// Keys are sorted for deterministic output; the masked asterisks are kept
// unescaped so the result stays readable. An unparseable URL is returned
// unchanged.
func maskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if len(q) == 0 {
		return rawURL
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var parts []string
	for _, key := range keys {
		for _, v := range q[key] {
			masked := url.QueryEscape(maskSensitive(key, v))
			masked = strings.ReplaceAll(masked, "%2A", "*")
			parts = append(parts, url.QueryEscape(key)+"="+masked)
		}
	}
	u.RawQuery = strings.Join(parts, "&")
	return u.String()
}
