package config

import (
	"crypto/sha256"
	"io"
	"os"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/hkdf"
)

const (
	hashKeyInfo  = "studylens cookie hmac"
	blockKeyInfo = "studylens cookie aes"
)

var sessionKey []byte

// InitSessionKey loads SESSION_KEY, the secret play cookie keys are derived
// from. An unset key falls back to a random one, so cookies do not survive a
// restart.
func InitSessionKey() {
	k := os.Getenv("SESSION_KEY")
	if k == "" {
		Logger.Warn("SESSION_KEY not set, using a random key")
		sessionKey = securecookie.GenerateRandomKey(32)
		return
	}
	if len(k) != 32 {
		panic("SESSION_KEY must be 32 bytes")
	}
	sessionKey = []byte(k)
}

// SessionKeys derives independent HMAC (64 bytes) and AES-256 keys from the
// session secret.
func SessionKeys() (hashKey, blockKey []byte) {
	if sessionKey == nil {
		InitSessionKey()
	}
	return deriveKey(hashKeyInfo, 64), deriveKey(blockKeyInfo, 32)
}

func deriveKey(info string, size int) []byte {
	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, sessionKey, nil, []byte(info)), key); err != nil {
		panic("derive session key: " + err.Error())
	}
	return key
}
