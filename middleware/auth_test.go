package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGate(t *testing.T) (*Auth, *gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	auth := NewAuth(db, []byte("test-secret"), time.Hour)
	r := gin.New()
	r.GET("/owner-only", auth.Authorize(models.RoleOwner), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUser(c).ID})
	})
	r.GET("/any", auth.Authorize(models.RoleAny), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUser(c).ID})
	})
	return auth, db, r
}

func request(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorize(t *testing.T) {
	auth, db, r := setupGate(t)

	owner := models.User{Email: "owner@test.com", PasswordHash: "x", Role: models.RoleOwner}
	client := models.User{Email: "client@test.com", PasswordHash: "x", Role: models.RoleClient}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	ownerToken, err := auth.GenerateToken(owner.ID)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	clientToken, err := auth.GenerateToken(client.ID)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	t.Run("missing credential is denied", func(t *testing.T) {
		if w := request(r, "/owner-only", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token is denied", func(t *testing.T) {
		if w := request(r, "/owner-only", "not-a-jwt"); w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", w.Code)
		}
	})

	t.Run("wrong signing key is denied", func(t *testing.T) {
		forged := NewAuth(db, []byte("other-secret"), time.Hour)
		token, err := forged.GenerateToken(owner.ID)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		if w := request(r, "/owner-only", token); w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", w.Code)
		}
	})

	t.Run("token without a subject id is denied", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if w := request(r, "/owner-only", token); w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", w.Code)
		}
	})

	t.Run("unknown user id is denied", func(t *testing.T) {
		token, err := auth.GenerateToken(999)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		if w := request(r, "/owner-only", token); w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", w.Code)
		}
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		if w := request(r, "/owner-only", clientToken); w.Code != http.StatusForbidden {
			t.Errorf("code = %d, want 403", w.Code)
		}
	})

	t.Run("matching role passes", func(t *testing.T) {
		if w := request(r, "/owner-only", ownerToken); w.Code != http.StatusOK {
			t.Errorf("code = %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Any wildcard admits every role", func(t *testing.T) {
		for _, token := range []string{ownerToken, clientToken} {
			if w := request(r, "/any", token); w.Code != http.StatusOK {
				t.Errorf("code = %d, want 200", w.Code)
			}
		}
	})
}
