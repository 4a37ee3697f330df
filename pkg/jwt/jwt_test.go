package jwt

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T, minutes int) *managerImpl {
	t.Helper()
	m, err := New(Config{
		SecretKey:         testSecret,
		Issuer:            "auth-srv",
		Audience:          "task-api",
		ExpirationMinutes: minutes,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m.(*managerImpl)
}

func decodeSegment(t *testing.T, seg string) map[string]any {
	t.Helper()
	raw, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		t.Fatalf("segment is not base64url: %v", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("segment is not JSON: %v", err)
	}
	return out
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing secret", Config{Issuer: "i", Audience: "a"}},
		{"short secret", Config{SecretKey: "short", Issuer: "i", Audience: "a"}},
		{"missing issuer", Config{SecretKey: testSecret, Audience: "a"}},
		{"blank issuer", Config{SecretKey: testSecret, Issuer: "   ", Audience: "a"}},
		{"missing audience", Config{SecretKey: testSecret, Issuer: "i"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, ErrInvalidSigningConfig) {
				t.Errorf("New error = %v, want ErrInvalidSigningConfig", err)
			}
		})
	}
}

func TestIssue_WireFormat(t *testing.T) {
	m := newTestManager(t, 60)

	tok, err := m.Issue("7", "a@test.com", "ADMIN")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parts := strings.Split(tok.Value, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	header := decodeSegment(t, parts[0])
	if header["alg"] != "HS256" || header["typ"] != "JWT" {
		t.Errorf("header = %v, want alg HS256 typ JWT", header)
	}

	claims := decodeSegment(t, parts[1])
	want := map[string]any{"sub": "7", "email": "a@test.com", "role": "ADMIN", "iss": "auth-srv", "jti": tok.ID}
	for k, v := range want {
		if claims[k] != v {
			t.Errorf("claim %s = %v, want %v", k, claims[k], v)
		}
	}
	if aud, ok := claims["aud"].([]any); !ok || len(aud) != 1 || aud[0] != "task-api" {
		t.Errorf("aud = %v, want [task-api]", claims["aud"])
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if exp-iat != 60*60 {
		t.Errorf("exp - iat = %d, want %d", exp-iat, 60*60)
	}
	if iat != tok.IssuedAt.Unix() || exp != tok.ExpiresAt.Unix() {
		t.Errorf("token metadata (%d, %d) does not match claims (%d, %d)",
			tok.IssuedAt.Unix(), tok.ExpiresAt.Unix(), iat, exp)
	}
}

func TestIssue_OmitsEmptyRole(t *testing.T) {
	m := newTestManager(t, 60)
	tok, err := m.Issue("7", "a@test.com", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	claims := decodeSegment(t, strings.Split(tok.Value, ".")[1])
	if _, ok := claims["role"]; ok {
		t.Errorf("role claim present for empty role: %v", claims["role"])
	}
}

func TestIssue_UniqueJTI(t *testing.T) {
	m := newTestManager(t, 30)
	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok, err := m.Issue("7", "a@test.com", "USER")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if seen[tok.ID] {
			t.Fatalf("duplicate jti %s", tok.ID)
		}
		seen[tok.ID] = true

		claims, err := m.Verify(tok.Value)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 30*time.Minute {
			t.Errorf("exp - iat = %v, want 30m", got)
		}
	}
}

func TestExpiration_Fallback(t *testing.T) {
	for _, minutes := range []int{0, -5} {
		m := newTestManager(t, minutes)
		if got := m.ExpirationMinutes(); got != DefaultExpirationMinutes {
			t.Errorf("ExpirationMinutes() with %d = %d, want %d", minutes, got, DefaultExpirationMinutes)
		}
		now := time.Now()
		if got := m.ExpiresAt(now); !got.Equal(now.Add(60 * time.Minute)) {
			t.Errorf("ExpiresAt = %v, want now+60m", got)
		}
	}
}

func TestIssue_ZeroValueManagerRefusesToSign(t *testing.T) {
	m := &managerImpl{now: time.Now}
	if _, err := m.Issue("7", "a@test.com", ""); !errors.Is(err, ErrInvalidSigningConfig) {
		t.Errorf("Issue error = %v, want ErrInvalidSigningConfig", err)
	}
}

func TestVerify_Rejects(t *testing.T) {
	m := newTestManager(t, 60)

	other := newTestManager(t, 60)
	other.secretKey = []byte("ffffffffffffffffffffffffffffffff")
	foreign, err := other.Issue("7", "a@test.com", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	wrongAud := newTestManager(t, 60)
	wrongAud.audience = "someone-else"
	audTok, err := wrongAud.Issue("7", "a@test.com", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	expired := newTestManager(t, 1)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	oldTok, err := expired.Issue("7", "a@test.com", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Email: "a@test.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ID:        "x",
			Issuer:    "auth-srv",
			Audience:  jwt.ClaimStrings{"task-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noneTok, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString(none) failed: %v", err)
	}

	tests := map[string]string{
		"garbage":         "not.a.token",
		"empty":           "",
		"foreign secret":  foreign.Value,
		"wrong audience":  audTok.Value,
		"expired":         oldTok.Value,
		"none algorithm":  noneTok,
		"tampered payload": func() string {
			tok, _ := m.Issue("7", "a@test.com", "USER")
			parts := strings.Split(tok.Value, ".")
			forged, _ := m.Issue("1", "root@test.com", "ADMIN")
			return parts[0] + "." + strings.Split(forged.Value, ".")[1] + "." + parts[2]
		}(),
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
