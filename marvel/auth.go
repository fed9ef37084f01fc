package marvel

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"
)

// AuthParams holds the three query parameters the Marvel gateway requires
// on every request. The hash depends on the timestamp, so a fresh set is
// generated for every attempt and never reused.
type AuthParams struct {
	Timestamp string
	APIKey    string
	Hash      string
}

// Clock returns the current time. Injected into the signer so tests can
// supply fixed instants instead of patching global state.
type Clock func() time.Time

// HashFunc renders the gateway signature for a prepared input string.
type HashFunc func(input string) string

// md5Hex is the signature the Marvel gateway mandates: lowercase hex MD5.
func md5Hex(input string) string {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}

// signer generates per-request authentication parameters.
type signer struct {
	publicKey  string
	privateKey string
	now        Clock
	hash       HashFunc
}

func newSigner(publicKey, privateKey string) *signer {
	return &signer{
		publicKey:  publicKey,
		privateKey: privateKey,
		now:        time.Now,
		hash:       md5Hex,
	}
}

// Sign returns a fresh timestamp/apikey/hash triplet. The concatenation
// order ts+privateKey+publicKey is fixed by the upstream protocol.
func (s *signer) Sign() AuthParams {
	ts := strconv.FormatInt(s.now().Unix(), 10)
	return AuthParams{
		Timestamp: ts,
		APIKey:    s.publicKey,
		Hash:      s.hash(ts + s.privateKey + s.publicKey),
	}
}
