package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const CookieName = "X-Draft-Token"

// DraftCookieMaxAge keeps the draft cookie for a working day.
const DraftCookieMaxAge = 24 * 60 * 60

func DraftCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

// NewToken returns a random hex token of n bytes.
func NewToken(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
