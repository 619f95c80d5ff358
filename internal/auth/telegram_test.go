package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const botToken = "987654:WIDGET-token"

func sign(fields map[string]string, token string) string {
	// Mirrors the widget: sorted key=value lines joined with \n, keyed by
	// SHA256 of the bot token. Kept independent of the implementation under
	// test on purpose.
	dataCheck := "auth_date=" + fields["auth_date"] +
		"\nfirst_name=" + fields["first_name"] +
		"\nid=" + fields["id"] +
		"\nusername=" + fields["username"]

	secret := sha256.Sum256([]byte(token))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(dataCheck))
	return hex.EncodeToString(mac.Sum(nil))
}

func widgetFields() map[string]string {
	return map[string]string{
		"id":         "42424242",
		"first_name": "Alice",
		"username":   "alice_dev",
		"auth_date":  "1700000000",
	}
}

func TestValidateLoginHash_Valid(t *testing.T) {
	fields := widgetFields()
	hash := sign(fields, botToken)

	assert.True(t, ValidateLoginHash(fields, hash, botToken))
}

func TestValidateLoginHash_TamperedField(t *testing.T) {
	fields := widgetFields()
	hash := sign(fields, botToken)

	fields["id"] = "1337"
	assert.False(t, ValidateLoginHash(fields, hash, botToken))
}

func TestValidateLoginHash_WrongBotToken(t *testing.T) {
	fields := widgetFields()
	hash := sign(fields, botToken)

	assert.False(t, ValidateLoginHash(fields, hash, "another:token"))
}

func TestValidateLoginHash_HashKeyExcluded(t *testing.T) {
	fields := widgetFields()
	hash := sign(fields, botToken)

	// A stray hash entry in the field map must not change the signature.
	fields["hash"] = hash
	assert.True(t, ValidateLoginHash(fields, hash, botToken))
}

func TestValidateLoginHash_MissingInputs(t *testing.T) {
	fields := widgetFields()
	hash := sign(fields, botToken)

	assert.False(t, ValidateLoginHash(fields, "", botToken))
	assert.False(t, ValidateLoginHash(fields, hash, ""))
}
