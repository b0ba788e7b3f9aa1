package middleware

import (
	"strings"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const accountContextKey = "account"

// AuthMiddleware resolves the bearer token through the gate and stores the
// account in the request context. Token verification always precedes the
// profile lookup.
func AuthMiddleware(gate *services.GateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := gate.AuthorizeProfile(bearerToken(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		setAccount(c, account)
		c.Next()
	}
}

// AdminMiddleware is the strict variant used on every admin route: the
// account must carry the admin flag and the admin portal grant.
func AdminMiddleware(gate *services.GateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := gate.AuthorizeAdmin(bearerToken(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		setAccount(c, account)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func setAccount(c *gin.Context, account *models.Account) {
	c.Set(accountContextKey, account)
	ctx := logger.WithActorID(c.Request.Context(), account.ID)
	c.Request = c.Request.WithContext(ctx)
}

func abortWithError(c *gin.Context, err error) {
	c.Abort()
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// GetAccount returns the account stored by the auth middleware, if any.
func GetAccount(c *gin.Context) *models.Account {
	val, exists := c.Get(accountContextKey)
	if !exists {
		return nil
	}
	account, ok := val.(*models.Account)
	if !ok {
		return nil
	}
	return account
}
