package middleware

import (
	"strings"
	"time"

	"food-ordering-api/models"
	"food-ordering-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const userKey = "user"

// Claims carries only the subject user id. Role and email are looked up
// fresh from the database on every request, not trusted from the token.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

type Auth struct {
	DB     *gorm.DB
	Secret []byte
	TTL    time.Duration
}

func NewAuth(db *gorm.DB, secret []byte, ttl time.Duration) *Auth {
	return &Auth{DB: db, Secret: secret, TTL: ttl}
}

// GenerateToken creates a signed JWT for a user id
func (a *Auth) GenerateToken(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.Secret)
}

// Authorize validates the bearer token, resolves the caller's identity from
// the database and checks it against the allowed roles. models.RoleAny
// grants any authenticated user. Routes with no Authorize middleware are
// public. Fails closed: any decode or lookup failure denies the request.
func (a *Auth) Authorize(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			resp.Unauthorized(c, "Authorization header required (Bearer <token>)")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.Secret, nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			resp.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		var user models.User
		if err := a.DB.First(&user, claims.UserID).Error; err != nil {
			resp.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		allowed := false
		for _, r := range roles {
			if r == models.RoleAny || r == user.Role {
				allowed = true
				break
			}
		}
		if !allowed {
			resp.Forbidden(c, "Access denied for role "+string(user.Role))
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser extracts the identity resolved by Authorize. Handlers call it
// once and pass the user explicitly into services.
func CurrentUser(c *gin.Context) models.User {
	val, _ := c.Get(userKey)
	return val.(models.User)
}
