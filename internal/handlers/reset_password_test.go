package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/wipetrack/erasure-api/internal/services"
)

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      ResetPasswordRequest
		mockSetup    func(m *MockPasswordResetter)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool
	}{
		{
			name: "reset by email and code",
			reqBody: ResetPasswordRequest{
				Email:       "john@example.com",
				Code:        "123456",
				NewPassword: "newpw",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					Reset(gomock.Any(), "john@example.com", "123456", "newpw").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Password updated"},
		},
		{
			name: "reset by token",
			reqBody: ResetPasswordRequest{
				Token:       "tok-123",
				NewPassword: "newpw",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetByToken(gomock.Any(), "tok-123", "newpw").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Password updated"},
		},
		{
			name: "token takes precedence over code",
			reqBody: ResetPasswordRequest{
				Email:       "john@example.com",
				Code:        "123456",
				Token:       "tok-123",
				NewPassword: "newpw",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetByToken(gomock.Any(), "tok-123", "newpw").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Password updated"},
		},
		{
			name: "invalid code",
			reqBody: ResetPasswordRequest{
				Email:       "john@example.com",
				Code:        "000000",
				NewPassword: "newpw",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					Reset(gomock.Any(), "john@example.com", "000000", "newpw").
					Return(services.ErrInvalidResetCode)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid or expired reset code"},
		},
		{
			name: "neither token nor code",
			reqBody: ResetPasswordRequest{
				NewPassword: "newpw",
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "either token or email and code are required"},
		},
		{
			name: "missing new password",
			reqBody: ResetPasswordRequest{
				Token: "tok-123",
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
		{
			name: "internal server error",
			reqBody: ResetPasswordRequest{
				Token:       "tok-123",
				NewPassword: "newpw",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetByToken(gomock.Any(), "tok-123", "newpw").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPasswordResetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewResetPasswordHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/auth/reset-password", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/auth/reset-password", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
