package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

const operatorKey = "operator"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Not authorized, no token provided", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Not authorized, token failed", http.StatusUnauthorized)
)

// OperatorClaims are the claims an operator token carries. Tokens are issued elsewhere.
type OperatorClaims struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth validates an HS256 Bearer token and stores the operator on the context.
func Auth(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &OperatorClaims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err == nil && claims.operatorID() == "" {
			err = errors.New("token has no operator id")
		}
		if err != nil {
			log.WithError(err).WithField("path", c.FullPath()).Info("[auth][middleware] token rejected")
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(operatorKey, entities.Operator{ID: claims.operatorID(), Name: claims.Name, Role: claims.Role})
		c.Next()
	}
}

// Anonymous stands in for Auth when token checks are disabled for local runs.
func Anonymous() gin.HandlerFunc {
	op := entities.Operator{ID: "local", Name: "Local operator", Role: "admin"}
	return func(c *gin.Context) {
		c.Set(operatorKey, op)
		c.Next()
	}
}

// OperatorFrom returns the operator set by Auth or Anonymous.
func OperatorFrom(c *gin.Context) entities.Operator {
	if v, ok := c.Get(operatorKey); ok {
		if op, ok := v.(entities.Operator); ok {
			return op
		}
	}
	return entities.Operator{}
}

// SignOperatorToken issues a token accepted by Auth. Used by tests and local tooling.
func SignOperatorToken(secret []byte, claims OperatorClaims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign operator token: %w", err)
	}
	return token, nil
}

func (c *OperatorClaims) operatorID() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Subject
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
