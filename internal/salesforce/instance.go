package salesforce

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/flowhost/sfbridge/internal/domain"
)

// loginHost is Salesforce's shared login endpoint. A sub claim pointing at
// it names the generic login host, not a tenant instance, so it is never
// accepted as an instance URL. The same exclusion is intentionally NOT
// applied to the profile claim; the two claims come from different token
// flows.
const loginHost = "https://login.salesforce.com"

// leadingOrigin matches an https origin anchored at the start of a claim
// value, e.g. "https://acme.my.salesforce.com" out of
// "https://acme.my.salesforce.com/id/00D.../005...".
var leadingOrigin = regexp.MustCompile(`^https://[^/\s]+`)

// ResolveInstanceURL produces the base URL for all Salesforce API calls.
// An explicit URL always wins, untouched, so integrators can point at
// sandboxes and custom domains. Otherwise the identity token's payload is
// decoded and the tenant origin is recovered from its profile or sub
// claim. A token that cannot be decoded is logged and treated as carrying
// no URL; if no source yields a URL the result is a ConfigurationError.
func ResolveInstanceURL(logger *slog.Logger, explicitURL, identityToken string) (string, error) {
	if explicitURL != "" {
		return explicitURL, nil
	}
	if identityToken != "" {
		if origin, ok := originFromToken(logger, identityToken); ok {
			return origin, nil
		}
	}
	return "", &domain.ConfigurationError{Reason: "instance URL required but not provided"}
}

type tokenClaims struct {
	Profile string `json:"profile"`
	Sub     string `json:"sub"`
}

// originFromToken extracts the instance origin from the payload segment of
// a compact three-part token. The signature is not verified: this layer
// only mines the payload for a URL, trust is the credential provider's
// problem.
func originFromToken(logger *slog.Logger, token string) (string, bool) {
	claims, err := decodePayload(token)
	if err != nil {
		logger.Warn("failed to decode identity token payload, trying next instance URL source",
			slog.Any("error", err))
		return "", false
	}

	if claims.Profile != "" {
		if origin := leadingOrigin.FindString(claims.Profile); origin != "" {
			return origin, true
		}
	}
	if claims.Sub != "" {
		if origin := leadingOrigin.FindString(claims.Sub); origin != "" && origin != loginHost {
			return origin, true
		}
	}
	return "", false
}

func decodePayload(token string) (*tokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, &domain.MalformedTokenError{
			Stage: "segments",
			Err:   fmt.Errorf("token has %d segments, want at least 2", len(parts)),
		}
	}

	// Payload segments are URL-safe base64, usually unpadded. Strip any
	// padding before decoding so both variants are accepted.
	segment := strings.TrimRight(parts[1], "=")
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return nil, &domain.MalformedTokenError{Stage: "base64", Err: err}
	}

	var claims tokenClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, &domain.MalformedTokenError{Stage: "json", Err: err}
	}
	return &claims, nil
}
