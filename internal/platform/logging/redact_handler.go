package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted is what masq prints in place of a masked value; the HTTP layer
// uses the same marker.
const Redacted = "[REDACTED]"

// credentialHeaders are lowercase header names whose values are credentials.
var credentialHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// secretFields are attribute and query parameter names (lowercase) that hold
// credentials or their derived hashes.
var secretFields = map[string]bool{
	"password":      true,
	"old_password":  true,
	"new_password":  true,
	"password_hash": true,
	"password_salt": true,
	"secret":        true,
	"token":         true,
	"access_token":  true,
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// bcrypt output, e.g. $2a$10$<53 chars>.
	bcryptPattern = regexp.MustCompile(`\$2[abxy]\$\d{2}\$[./A-Za-z0-9]{53}`)
	jwtPattern    = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
)

// IsSensitiveHeader reports whether the named HTTP header must not be logged.
func IsSensitiveHeader(name string) bool {
	return credentialHeaders[strings.ToLower(name)]
}

// IsSensitiveField reports whether a log attribute or query parameter of this
// name must not be logged.
func IsSensitiveField(name string) bool {
	return secretFields[strings.ToLower(name)]
}

// newRedactAttr masks by attribute name first and then by value shape, so a
// hash or token that ends up under an innocent key is still caught.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(bcryptPattern),
		masq.WithRegex(jwtPattern),
	}
	for name := range credentialHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
