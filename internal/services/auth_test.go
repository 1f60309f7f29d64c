package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wipetrack/erasure-api/internal/models"
	"github.com/wipetrack/erasure-api/internal/services"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserReader(ctrl)
	subusers := services.NewMockSubuserReader(ctrl)
	writer := services.NewMockUserWriter(ctrl)
	invalidator := services.NewMockContextInvalidator(ctrl)
	audit := services.NewMockAuditPublisher(ctrl)
	svc := services.NewAuthService(users, subusers, writer, nil, invalidator, audit)

	users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
	subusers.EXPECT().ExistsByEmail(gomock.Any(), "new@example.com").Return(false, nil)
	writer.EXPECT().
		Save(gomock.Any(), "new@example.com", "New User", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string) error {
			// The stored hash must verify against the raw password.
			return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("s3cret"))
		})
	invalidator.EXPECT().Invalidate(gomock.Any(), "new@example.com").Return(nil)
	audit.EXPECT().Publish(gomock.Any(), models.AuditUserRegistered, "new@example.com", "")

	err := svc.Register(context.Background(), "New@Example.com", "New User", "s3cret")
	require.NoError(t, err)
}

func TestAuthService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(users *services.MockUserReader, subusers *services.MockSubuserReader)
	}{
		{
			name: "email taken by a primary account",
			setup: func(users *services.MockUserReader, subusers *services.MockSubuserReader) {
				users.EXPECT().
					GetByEmail(gomock.Any(), "taken@example.com").
					Return(&models.UserDB{UserID: 1, Email: "taken@example.com"}, nil)
			},
		},
		{
			name: "email taken by a subuser",
			setup: func(users *services.MockUserReader, subusers *services.MockSubuserReader) {
				users.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").Return(nil, nil)
				subusers.EXPECT().ExistsByEmail(gomock.Any(), "taken@example.com").Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := services.NewMockUserReader(ctrl)
			subusers := services.NewMockSubuserReader(ctrl)
			writer := services.NewMockUserWriter(ctrl)
			invalidator := services.NewMockContextInvalidator(ctrl)
			svc := services.NewAuthService(users, subusers, writer, nil, invalidator, nil)

			tt.setup(users, subusers)

			err := svc.Register(context.Background(), "taken@example.com", "Someone", "pw")
			assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
		})
	}
}

func TestAuthService_Login_PrimaryUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserReader(ctrl)
	subusers := services.NewMockSubuserReader(ctrl)
	jwt := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(users, subusers, nil, jwt, nil, nil)

	users.EXPECT().
		GetByEmail(gomock.Any(), "owner@example.com").
		Return(&models.UserDB{Email: "owner@example.com", PasswordHash: hashPassword(t, "s3cret")}, nil)
	jwt.EXPECT().Generate(gomock.Any(), "owner@example.com", models.UserTypePrimary).Return("signed-token", nil)

	token, err := svc.Login(context.Background(), "Owner@Example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuthService_Login_Subuser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserReader(ctrl)
	subusers := services.NewMockSubuserReader(ctrl)
	jwt := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(users, subusers, nil, jwt, nil, nil)

	users.EXPECT().GetByEmail(gomock.Any(), "child@example.com").Return(nil, nil)
	subusers.EXPECT().
		GetByEmail(gomock.Any(), "child@example.com").
		Return(&models.SubuserDB{Email: "child@example.com", PasswordHash: hashPassword(t, "childpw")}, nil)
	jwt.EXPECT().Generate(gomock.Any(), "child@example.com", models.UserTypeSubuser).Return("sub-token", nil)

	token, err := svc.Login(context.Background(), "child@example.com", "childpw")
	require.NoError(t, err)
	assert.Equal(t, "sub-token", token)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		password string
		setup    func(users *services.MockUserReader, subusers *services.MockSubuserReader)
		wantErr  error
	}{
		{
			name:     "wrong password for primary account",
			password: "wrong",
			setup: func(users *services.MockUserReader, subusers *services.MockSubuserReader) {
				users.EXPECT().
					GetByEmail(gomock.Any(), "owner@example.com").
					DoAndReturn(func(_ context.Context, email string) (*models.UserDB, error) {
						return &models.UserDB{Email: email, PasswordHash: hashPassword(t, "correct")}, nil
					})
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "any",
			setup: func(users *services.MockUserReader, subusers *services.MockSubuserReader) {
				users.EXPECT().GetByEmail(gomock.Any(), "owner@example.com").Return(nil, nil)
				subusers.EXPECT().GetByEmail(gomock.Any(), "owner@example.com").Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := services.NewMockUserReader(ctrl)
			subusers := services.NewMockSubuserReader(ctrl)
			svc := services.NewAuthService(users, subusers, nil, nil, nil, nil)

			tt.setup(users, subusers)

			_, err := svc.Login(context.Background(), "owner@example.com", tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserReader(ctrl)
	subusers := services.NewMockSubuserReader(ctrl)
	svc := services.NewAuthService(users, subusers, nil, nil, nil, nil)

	storeErr := errors.New("connection refused")
	users.EXPECT().GetByEmail(gomock.Any(), "owner@example.com").Return(nil, storeErr)

	_, err := svc.Login(context.Background(), "owner@example.com", "pw")
	assert.ErrorIs(t, err, storeErr)
}
