// Package preview carries the draft-content gate: an httponly signed
// cookie selecting between the published and draft perspectives. The
// options value is opaque to the rest of the pipeline and propagated
// unchanged into every content query.
package preview

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const CookieName = "__studio_preview"

const (
	PerspectivePublished = "published"
	PerspectiveDrafts    = "drafts"
)

var ErrBadSignature = errors.New("preview: invalid session signature")

// Options selects the content view for one request. The zero value is
// not meaningful; use Published() as the default.
type Options struct {
	Preview     bool   `json:"preview"`
	Perspective string `json:"perspective"`
	Stega       bool   `json:"stega"`
}

// Published is the default: published-only content, no visual-editing
// annotation.
func Published() Options {
	return Options{Perspective: PerspectivePublished}
}

// Drafts enables draft-inclusive content with stega annotation, as used
// inside the studio's presentation iframe.
func Drafts() Options {
	return Options{Preview: true, Perspective: PerspectiveDrafts, Stega: true}
}

type session struct {
	ID          string `json:"id"`
	Preview     bool   `json:"preview"`
	Perspective string `json:"perspective"`
}

func sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func encode(secret []byte, s session) (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + sign(secret, payload), nil
}

func decode(secret []byte, value string) (session, error) {
	var s session

	encoded, signature, ok := strings.Cut(value, ".")
	if !ok {
		return s, ErrBadSignature
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return s, ErrBadSignature
	}
	if !hmac.Equal([]byte(sign(secret, payload)), []byte(signature)) {
		return s, ErrBadSignature
	}

	if err := json.Unmarshal(payload, &s); err != nil {
		return s, ErrBadSignature
	}
	return s, nil
}

// FromRequest reads the preview session cookie. A missing, tampered or
// preview=false session yields published-only options: the gate fails
// closed, never open.
func FromRequest(r *http.Request, secret []byte) Options {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Published()
	}

	s, err := decode(secret, cookie.Value)
	if err != nil || !s.Preview {
		return Published()
	}

	perspective := s.Perspective
	if perspective == "" {
		perspective = PerspectiveDrafts
	}

	return Options{Preview: true, Perspective: perspective, Stega: true}
}

// SetCookie writes a fresh signed preview session.
func SetCookie(w http.ResponseWriter, secret []byte, perspective string, secure bool) error {
	if perspective == "" {
		perspective = PerspectiveDrafts
	}

	value, err := encode(secret, session{
		ID:          uuid.NewString(),
		Preview:     true,
		Perspective: perspective,
	})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie removes the preview session.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
