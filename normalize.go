package wechat

import (
	"encoding/json"
	"strconv"
	"time"
)

// standardTokenFields are the RFC 6749 token response fields promoted to
// typed fields on AccessToken. Everything else goes into the extension
// mapping.
var standardTokenFields = map[string]bool{
	"access_token":  true,
	"token_type":    true,
	"expires_in":    true,
	"refresh_token": true,
	"scope":         true,
}

// normalizeToken converts a decoded provider payload into an AccessToken.
// Standard fields are promoted to typed fields; remaining keys form the
// extension mapping and stay reachable through Extra. The full payload is
// retained, so when an extension key collides with a standard field name
// the provider's value wins on Extra lookups.
func normalizeToken(payload map[string]any) *AccessToken {
	t := &AccessToken{
		AccessToken:  stringField(payload, "access_token"),
		TokenType:    stringField(payload, "token_type"),
		ExpiresIn:    intField(payload, "expires_in"),
		RefreshToken: stringField(payload, "refresh_token"),
		Scope:        stringField(payload, "scope"),
		raw:          payload,
	}

	if t.ExpiresIn > 0 {
		t.ExpiresAt = time.Now().Add(time.Duration(t.ExpiresIn) * time.Second)
	}

	for k, v := range payload {
		if standardTokenFields[k] {
			continue
		}
		if t.extra == nil {
			t.extra = make(map[string]any)
		}
		t.extra[k] = v
	}

	return t
}

// stringField returns the payload value for key as a string. Non-string
// scalars are formatted, since WeChat is not consistent about value types.
func stringField(payload map[string]any, key string) string {
	switch v := payload[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// intField returns the payload value for key as an int64, accepting JSON
// numbers and numeric strings. Unparseable values yield zero.
func intField(payload map[string]any, key string) int64 {
	switch v := payload[key].(type) {
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}
