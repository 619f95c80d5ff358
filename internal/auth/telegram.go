// Package auth verifies Telegram Login Widget payloads.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ValidateLoginHash checks the widget's HMAC signature.
//
// Per the Telegram contract: the data-check-string is every field except
// hash, formatted as "key=value" lines sorted by key and joined with \n;
// the secret key is SHA256(botToken); receivedHash must equal the
// hex-encoded HMAC-SHA256 of the data-check-string under that key.
func ValidateLoginHash(fields map[string]string, receivedHash, botToken string) bool {
	if botToken == "" || receivedHash == "" {
		return false
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}
	dataCheckString := strings.Join(lines, "\n")

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(dataCheckString))
	computed := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(receivedHash))
}
