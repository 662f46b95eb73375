package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/middleware"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ptrString(s string) *string { return &s }
func ptrBool(b bool) *bool       { return &b }

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := dto.CreateUserInput{
		Username: "alice",
		Password: "123456",
		Email:    ptrString("alice@prefeitura.gov.br"),
	}

	mockUser.EXPECT().FindByUsername("alice").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Save(gomock.Any()).Return(nil)

	user, err := svc.RegisterUser(input)
	assert.NoError(t, err)
	assert.Equal(t, string(models.UserRoleEditor), user.Role)
	assert.True(t, user.Active)
	// stored password is hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("123456")))
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByUsername("admin").Return(models.User{Username: "admin"}, nil)

	_, err := svc.RegisterUser(dto.CreateUserInput{Username: "admin", Password: "123456"})
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{Username: "bob", Password: string(hashed), Active: true}
	user.ID = 1

	mockUser.EXPECT().FindByUsername("bob").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u models.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{Username: "bob", Password: string(hashed), Active: true}

	mockUser.EXPECT().FindByUsername("bob").Return(user, nil)

	_, token, err := svc.LoginUser("bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
}

func TestLoginUser_InactiveAccount(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{Username: "bob", Password: string(hashed), Active: false}

	mockUser.EXPECT().FindByUsername("bob").Return(user, nil)

	_, _, err := svc.LoginUser("bob", "123456")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_ChangePasswordRequiresOldOne(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	existing := models.User{Password: string(hashed), Active: true}
	existing.ID = 1

	mockUser.EXPECT().FindByID(uint(1)).Return(existing, nil)

	input := dto.UpdateUserInput{Password: ptrString("newpass")}
	_, err := svc.UpdateUser(1, input, false)
	assert.Equal(t, ErrMissingOldPassword, err)
}

func TestUpdateUser_AdminSkipsOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	existing := models.User{Password: string(hashed), Active: true}
	existing.ID = 1

	mockUser.EXPECT().FindByID(uint(1)).Return(existing, nil)
	mockUser.EXPECT().Save(gomock.Any()).Return(nil)

	input := dto.UpdateUserInput{Password: ptrString("newpass")}
	user, err := svc.UpdateUser(1, input, true)
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpass")))
}

func TestUpdateUser_RoleChangeOnlyForAdmins(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	existing := models.User{Role: string(models.UserRoleEditor), Active: true}
	existing.ID = 1

	mockUser.EXPECT().FindByID(uint(1)).Return(existing, nil)
	mockUser.EXPECT().Save(gomock.Any()).Return(nil)

	input := dto.UpdateUserInput{Role: ptrString(string(models.UserRoleAdmin)), Active: ptrBool(false)}
	user, err := svc.UpdateUser(1, input, false)
	assert.NoError(t, err)
	assert.Equal(t, string(models.UserRoleEditor), user.Role)
	assert.True(t, user.Active)
}

// --------------------- DeleteUser ---------------------
func TestDeleteUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByID(uint(9)).Return(models.User{}, gorm.ErrRecordNotFound)

	err := svc.DeleteUser(9)
	assert.Equal(t, ErrUserNotFound, err)
}
