package auth

import (
	"crypto/ed25519"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// privateKey and publicKey sign and verify session tokens.
var (
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey

	// TokenTTLSec is the token lifetime in seconds; 0 means no expiry claim.
	TokenTTLSec int
)

// parseTokenTTL reads TOKEN_EXPIRE_TIME ("never", empty, or a Go duration)
// and sets TokenTTLSec.
func parseTokenTTL() {
	raw := os.Getenv("TOKEN_EXPIRE_TIME")
	if raw == "" || raw == "never" || raw == "0" {
		TokenTTLSec = 0
		return
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("failed to parse TOKEN_EXPIRE_TIME: %v\n", err)
		os.Exit(1)
	}
	TokenTTLSec = int(d.Seconds())
}

// Init generates a fresh ed25519 key pair at startup. Tokens do not survive
// a process restart; clients simply log in again.
func Init() {
	var err error
	publicKey, privateKey, err = ed25519.GenerateKey(nil)
	if err != nil {
		fmt.Printf("failed to generate ed25519 key pair: %v\n", err)
		os.Exit(1)
	}
	parseTokenTTL()
}

// InitFromPath loads an ed25519 key pair from disk so tokens stay valid
// across restarts.
func InitFromPath(privatePath, publicPath string) error {
	priv, err := os.ReadFile(privatePath)
	if err != nil {
		return fmt.Errorf("failed to read private key file: %w", err)
	}
	pub, err := os.ReadFile(publicPath)
	if err != nil {
		return fmt.Errorf("failed to read public key file: %w", err)
	}

	privateKey = ed25519.PrivateKey(priv)
	publicKey = ed25519.PublicKey(pub)
	parseTokenTTL()
	return nil
}

// CreateJWT mints a signed session token with "sub" = userID. The token is
// the sole identity carrier: every request resolves it independently, so two
// concurrent logins can never observe each other's session.
func CreateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
	}
	if TokenTTLSec > 0 {
		claims["exp"] = time.Now().Add(time.Duration(TokenTTLSec) * time.Second).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(privateKey)
}

// AuthenticateJWT verifies a token string and returns its subject.
func AuthenticateJWT(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("jwt parse error: %w", err)
	}
	if !t.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid jwt claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", fmt.Errorf("missing sub in jwt")
	}
	return sub, nil
}
