// Package session adapts signed session tokens into permit Subjects. It
// implements the producer side of the engine's contract: the engine assumes
// every subject's role is one of the hierarchy's roles and never re-checks
// it per call, so this boundary is where that guarantee is enforced.
package session

import (
	"time"

	"github.com/dpup/permit"
	"github.com/dpup/permit/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
)

// Leeway for JWT expiration checks.
const jwtLeeway = 5 * time.Second

// Overridable for tests.
var timeFunc = time.Now

// Claims carries a subject inside a JWT. The subject's id maps to the `sub`
// claim; role, permission overrides, and team memberships ride in custom
// claims.
type Claims struct {
	jwt.RegisteredClaims

	// The subject's assigned role.
	Role string `json:"role"`

	// Explicit permission overrides in canonical "action:resource" form.
	Permissions []string `json:"perms,omitempty"`

	// Team memberships used by predicates.
	Teams []string `json:"teams,omitempty"`
}

// SubjectToken creates a signed JWT for the given subject, valid for ttl.
func SubjectToken(signingKey []byte, subject permit.Subject, ttl time.Duration) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.ID,
			IssuedAt:  jwt.NewNumericDate(timeFunc()),
			ExpiresAt: jwt.NewNumericDate(timeFunc().Add(ttl)),
		},
		Role:        string(subject.Role),
		Permissions: subject.Permissions.Strings(),
		Teams:       subject.Teams,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(signingKey)
	if err != nil {
		return "", errors.Wrap(err, 0).WithCode(codes.Internal)
	}
	return ss, nil
}

// ParseSubjectToken takes a signed JWT, validates it, and returns the
// subject encoded within. Invalid and expired tokens error, as do tokens
// whose role claim is outside the hierarchy or whose permission overrides
// are malformed: bad subjects are rejected at this boundary rather than
// silently denied by every later engine call.
func ParseSubjectToken(signingKey []byte, tokenString string, h permit.Hierarchy) (permit.Subject, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(jwtLeeway),
		jwt.WithTimeFunc(timeFunc),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return permit.Subject{}, errors.Wrap(err, 0).WithCode(codes.Unauthenticated)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return permit.Subject{}, errors.Codef(codes.Unauthenticated, "session: invalid claims")
	}

	if !h.Contains(permit.Role(claims.Role)) {
		return permit.Subject{}, errors.Codef(codes.Unauthenticated, "session: role '%s' is not in the hierarchy", claims.Role)
	}

	overrides := permit.PermissionSet{}
	for _, s := range claims.Permissions {
		p, err := permit.ParsePermission(s)
		if err != nil {
			return permit.Subject{}, errors.WrapPrefix(err, "session: bad permission override", 0).WithCode(codes.Unauthenticated)
		}
		overrides.Add(p)
	}

	return permit.Subject{
		ID:          claims.Subject,
		Role:        permit.Role(claims.Role),
		Permissions: overrides,
		Teams:       claims.Teams,
	}, nil
}
