//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/tests/common/httptest"
	usecasemock "consultation-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, validator *usecasemock.MockTokenValidator, roles ...user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	m := middleware.NewAuthMiddleware(validator)
	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role.String()})
	})
	r.GET("/me", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	actor := user.NewActor(uuid.New(), user.RoleClient)

	testCases := []struct {
		name        string
		token       string
		setupMock   func(m *usecasemock.MockTokenValidator)
		expectCode  int
		expectInMsg string
	}{
		{
			name:  "success: valid token sets the actor",
			token: "good",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(actor, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:        "error: missing token",
			token:       "",
			setupMock:   func(m *usecasemock.MockTokenValidator) {},
			expectCode:  http.StatusUnauthorized,
			expectInMsg: "Access token required",
		},
		{
			name:  "error: invalid token",
			token: "bad",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("bad").Return(user.Actor{}, errors.New("signature is invalid"))
			},
			expectCode:  http.StatusUnauthorized,
			expectInMsg: "Invalid or expired token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)

			rec := httptest.PerformRequest(t, newRouter(t, validator), http.MethodGet, "/me", nil, tc.token)
			if tc.expectCode == http.StatusOK {
				var body map[string]string
				httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
				assert.Equal(t, actor.ID.String(), body["id"])
				assert.Equal(t, "client", body["role"])
				return
			}
			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectInMsg)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("pro").Return(user.NewActor(uuid.New(), user.RoleProfessional), nil)

		rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleProfessional), http.MethodGet, "/me", nil, "pro")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("client").Return(user.NewActor(uuid.New(), user.RoleClient), nil)

		rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleProfessional), http.MethodGet, "/me", nil, "client")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}
