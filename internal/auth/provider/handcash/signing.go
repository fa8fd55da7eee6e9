package handcash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"onesat-market/internal/auth"
	"onesat-market/internal/errs"
)

// Headers HandCash Connect reads to authenticate a request on behalf of
// the account that granted the authToken.
const (
	headerPublicKey = "oauth-publickey"
	headerSignature = "oauth-signature"
	headerTimestamp = "oauth-timestamp"

	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// requestKey is the secp256k1 key encoded by an authToken. The token is the
// private key in hex; HandCash knows the matching public key.
type requestKey struct {
	priv *secp256k1.PrivateKey
}

func newRequestKey(token auth.AuthToken) (*requestKey, error) {
	raw, err := hex.DecodeString(token.Reveal())
	if err != nil || len(raw) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("handcash: auth token is not a hex encoded key: %w", errs.ErrUnauthorized)
	}

	priv := secp256k1.PrivKeyFromBytes(raw)
	clear(raw)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("handcash: auth token is out of range: %w", errs.ErrUnauthorized)
	}
	return &requestKey{priv: priv}, nil
}

func (k *requestKey) publicKey() string {
	return hex.EncodeToString(k.priv.PubKey().SerializeCompressed())
}

// sign stamps the signature headers on req. endpoint is the API path
// without host or query; an absent body is signed as "{}".
func (k *requestKey) sign(req *http.Request, endpoint string, body []byte, at time.Time) {
	ts := at.UTC().Format(timestampLayout)
	digest := signatureDigest(req.Method, endpoint, ts, body)
	sig := ecdsa.Sign(k.priv, digest[:])

	req.Header.Set(headerPublicKey, k.publicKey())
	req.Header.Set(headerSignature, hex.EncodeToString(sig.Serialize()))
	req.Header.Set(headerTimestamp, ts)
}

func (k *requestKey) zero() {
	k.priv.Zero()
}

func signatureDigest(method, endpoint, timestamp string, body []byte) [32]byte {
	if len(body) == 0 {
		body = []byte("{}")
	}
	payload := method + "\n" + endpoint + "\n" + timestamp + "\n" + string(body)
	return sha256.Sum256([]byte(payload))
}
