package auth

// AuthToken is the opaque bearer credential issued by the identity
// provider. It is never parsed and must only travel in the HttpOnly
// cookie or in provider requests.
type AuthToken struct {
	value string
}

// NewAuthToken wraps a raw credential as given. Only the empty string
// counts as missing.
func NewAuthToken(raw string) AuthToken {
	return AuthToken{value: raw}
}

// Empty reports whether the token carries no credential.
func (t AuthToken) Empty() bool {
	return t.value == ""
}

// Reveal returns the raw credential for the cookie codec and the
// provider transport.
func (t AuthToken) Reveal() string {
	return t.value
}

// String keeps tokens out of logs and fmt output.
func (t AuthToken) String() string {
	if t.value == "" {
		return ""
	}
	return "[redacted]"
}

// Profile is the public identity returned by the provider. As a cookie it
// is a display cache only and is never trusted for authorization.
type Profile struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// Balance is the spendable wallet balance of an account.
type Balance struct {
	SpendableSatoshiBalance int64   `json:"spendableSatoshiBalance"`
	SpendableFiatBalance    float64 `json:"spendableFiatBalance"`
	CurrencyCode            string  `json:"currencyCode"`
}
