package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/community-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/community-api/internal/pkg/jwthelper"
)

const userIDKey = "userID"

var (
	errMissingToken     = errors.New("missing bearer token")
	errUserAgentChanged = errors.New("token was issued to another client")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := a.authenticate(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// OptionalJWT lets anonymous requests through but still rejects a bad token.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") == "" {
			ctx.Next()
			return
		}

		userID, err := a.authenticate(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

func (a *Authenticator) authenticate(ctx *gin.Context) (uint, error) {
	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return 0, errMissingToken
	}

	claims, err := jwthelper.ParseToken(a.signingKey, token)
	if err != nil {
		return 0, err
	}

	if claims.UserAgent != ctx.Request.UserAgent() {
		return 0, errUserAgentChanged
	}

	return claims.UserID, nil
}

// UserID returns the authenticated user id set by VerifyJWT or OptionalJWT.
func UserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return 0, false
	}

	id, ok := v.(uint)

	return id, ok
}

// SetUserID is used by tests to bypass token parsing.
func SetUserID(ctx *gin.Context, userID uint) {
	ctx.Set(userIDKey, userID)
}
