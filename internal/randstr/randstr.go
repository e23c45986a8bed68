// Package randstr generates cryptographically secure random strings for
// bootstrap passwords and development signing secrets.
package randstr

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

const (
	// PasswordLen gives ~95 bits of entropy with Alphanumeric.
	PasswordLen = 16
	// SecretBytes is the size of a generated HMAC secret.
	SecretBytes = 32

	byteRange = 256
)

// Alphanumeric is the default password alphabet.
var Alphanumeric = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// ErrCharset is returned for an alphabet outside 2..256 characters.
var ErrCharset = errors.New("randstr: charset must hold 2 to 256 characters")

// Password returns a random alphanumeric string of PasswordLen characters.
func Password() (string, error) {
	return FromCharset(PasswordLen, Alphanumeric)
}

// Secret returns SecretBytes random bytes, hex encoded.
func Secret() (string, error) {
	buf := make([]byte, SecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "randstr: reading random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// FromCharset returns a random string of length characters taken from chars.
// Bytes above the largest multiple of len(chars) are rejected so every
// character is equally likely.
func FromCharset(length int, chars []byte) (string, error) {
	n := len(chars)
	if n < 2 || n > byteRange {
		return "", ErrCharset
	}

	if length <= 0 {
		return "", nil
	}

	limit := byteRange - byteRange%n
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "randstr: reading random bytes")
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, chars[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
