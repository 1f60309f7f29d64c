package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wipetrack/erasure-api/internal/models"
)

func TestMeHandler_PrimaryUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewMockIdentityResolver(ctrl)
	router := NewMockTenantRouter(ctrl)

	userID := int64(42)
	router.EXPECT().CurrentUserEmail(gomock.Any()).Return("owner@example.com")
	resolver.EXPECT().
		Resolve(gomock.Any(), "owner@example.com").
		Return(&models.UserContext{
			UserID:            &userID,
			Email:             "owner@example.com",
			Name:              "Owner",
			PrivateAPIEnabled: true,
		}, nil)
	router.EXPECT().IsPrivateCloud(gomock.Any()).Return(true)
	router.EXPECT().EffectiveEmail(gomock.Any()).Return("owner@example.com")
	router.EXPECT().OriginalEmail(gomock.Any()).Return("owner@example.com")

	handler := NewMeHandler(resolver, router)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "owner@example.com", resp.Email)
	assert.Equal(t, "user", resp.UserType)
	assert.False(t, resp.IsSubuser)
	assert.True(t, resp.PrivateAPIEnabled)
	assert.True(t, resp.IsPrivateCloud)
	assert.Equal(t, "owner@example.com", resp.EffectiveEmail)
}

func TestMeHandler_Subuser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewMockIdentityResolver(ctrl)
	router := NewMockTenantRouter(ctrl)

	subuserID := int64(7)
	router.EXPECT().CurrentUserEmail(gomock.Any()).Return("child@example.com")
	resolver.EXPECT().
		Resolve(gomock.Any(), "child@example.com").
		Return(&models.UserContext{
			Email:       "child@example.com",
			Name:        "Child",
			IsSubuser:   true,
			SubuserID:   &subuserID,
			ParentEmail: "owner@example.com",
		}, nil)
	router.EXPECT().IsPrivateCloud(gomock.Any()).Return(false)
	router.EXPECT().EffectiveEmail(gomock.Any()).Return("owner@example.com")
	router.EXPECT().OriginalEmail(gomock.Any()).Return("child@example.com")

	handler := NewMeHandler(resolver, router)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "subuser", resp.UserType)
	assert.True(t, resp.IsSubuser)
	assert.Equal(t, "owner@example.com", resp.ParentEmail)
	assert.False(t, resp.PrivateAPIEnabled)
	assert.Equal(t, "owner@example.com", resp.EffectiveEmail)
	assert.Equal(t, "child@example.com", resp.OriginalEmail)
}

func TestMeHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewMockIdentityResolver(ctrl)
	router := NewMockTenantRouter(ctrl)

	router.EXPECT().CurrentUserEmail(gomock.Any()).Return("")

	handler := NewMeHandler(resolver, router)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeHandler_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewMockIdentityResolver(ctrl)
	router := NewMockTenantRouter(ctrl)

	router.EXPECT().CurrentUserEmail(gomock.Any()).Return("ghost@example.com")
	resolver.EXPECT().Resolve(gomock.Any(), "ghost@example.com").Return(nil, nil)

	handler := NewMeHandler(resolver, router)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMeHandler_ResolutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewMockIdentityResolver(ctrl)
	router := NewMockTenantRouter(ctrl)

	router.EXPECT().CurrentUserEmail(gomock.Any()).Return("owner@example.com")
	resolver.EXPECT().Resolve(gomock.Any(), "owner@example.com").Return(nil, errors.New("redis down"))

	handler := NewMeHandler(resolver, router)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
