package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-cuti/internal/shared/apperror"
	"go-cuti/internal/shared/contextutil"
	"go-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// RejectFunc writes the response for a request whose token is rejected. It
// must abort the chain.
type RejectFunc func(c *gin.Context, err *apperror.AppError)

// IdentifyUser resolves who is looking at the page. A request without a token
// continues anonymously; a token that is present must be valid. Rejections
// are written as JSON envelopes.
func IdentifyUser(secret string) gin.HandlerFunc {
	return IdentifyUserWith(secret, abortWith)
}

// IdentifyUserWith is IdentifyUser with a custom rejection response.
func IdentifyUserWith(secret string, reject RejectFunc) gin.HandlerFunc {
	if reject == nil {
		reject = abortWith
	}
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			errObj := apperror.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = apperror.ErrTokenExpired
			}
			reject(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			reject(c, apperror.ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		companyID, _ := claims["company_id"].(string)
		employeeID, _ := claims["employee_id"].(string)
		if userID == "" || companyID == "" || employeeID == "" {
			reject(c, apperror.ErrInvalidToken)
			return
		}
		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("employee_id", employeeID)
		c.Set("company_id", companyID)
		c.Set("role", role)

		ctx := contextutil.WithIdentity(c.Request.Context(), contextutil.Identity{
			UserID:     userID,
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Role:       role,
		})
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, nil).With(
			zap.String("user_id", userID),
			zap.String("company_id", companyID),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
