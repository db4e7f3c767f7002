package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/api/middleware"
	"github.com/farmart-ke/farmart-backend/internal/domain/buyer"
	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
	"github.com/farmart-ke/farmart-backend/internal/domain/user"
	"github.com/farmart-ke/farmart-backend/internal/repository"
	"github.com/farmart-ke/farmart-backend/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo, *mock.MockFarmerRepo, *mock.MockBuyerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock.NewMockUserRepo(ctrl)
	mockFarmer := mock.NewMockFarmerRepo(ctrl)
	mockBuyer := mock.NewMockBuyerRepo(ctrl)

	// base repos with an in-memory sqlite gorm DB so ExecTx is safe, then inject mocks
	dbConn, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	repos := repository.NewRepositories(dbConn)
	repos.User = mockUser
	repos.Farmer = mockFarmer
	repos.Buyer = mockBuyer

	// Ensure WithTx returns the same mock so transactional calls use the expected mock methods
	mockUser.EXPECT().WithTx(gomock.Any()).Return(mockUser).AnyTimes()
	mockFarmer.EXPECT().WithTx(gomock.Any()).Return(mockFarmer).AnyTimes()
	mockBuyer.EXPECT().WithTx(gomock.Any()).Return(mockBuyer).AnyTimes()

	svc := NewUserService(repos)
	return svc, mockUser, mockFarmer, mockBuyer
}

func buyerRegisterInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    ptrString("jane@test.com"),
		Password: ptrString("secret123"),
		Role:     ptrString("buyer"),
		FullName: ptrString("Jane Wanjiku"),
	}
}

func farmerRegisterInput() user.RegisterInput {
	return user.RegisterInput{
		Email:       ptrString("kamau@test.com"),
		Password:    ptrString("secret123"),
		Role:        ptrString("farmer"),
		FullName:    ptrString("Kamau Njoroge"),
		FarmName:    ptrString("Njoroge Farm"),
		Location:    ptrString("Nakuru"),
		PhoneNumber: ptrString("+254700111222"),
	}
}

// --------------------- Register ---------------------
func TestRegister_BuyerSuccess(t *testing.T) {
	svc, mockUser, _, mockBuyer := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("jane@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, "jane@test.com", u.Email)
		assert.Equal(t, user.RoleBuyer, u.Role)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "secret123", u.PasswordHash)
		return nil
	})
	mockBuyer.EXPECT().SaveBuyer(gomock.Any()).DoAndReturn(func(b *buyer.Buyer) error {
		assert.NotEqual(t, uuid.Nil, b.UserID)
		return nil
	})

	usr, err := svc.Register(buyerRegisterInput())
	assert.NoError(t, err)
	assert.Equal(t, "jane@test.com", usr.Email)
	assert.NotEqual(t, uuid.Nil, usr.ID)
}

func TestRegister_FarmerSuccess(t *testing.T) {
	svc, mockUser, mockFarmer, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("kamau@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockFarmer.EXPECT().GetFarmerByPhoneNumber("+254700111222").Return(farmer.Farmer{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)
	mockFarmer.EXPECT().SaveFarmer(gomock.Any()).DoAndReturn(func(f *farmer.Farmer) error {
		assert.Equal(t, "Njoroge Farm", f.FarmName)
		assert.Equal(t, "Nakuru", f.Location)
		return nil
	})

	usr, err := svc.Register(farmerRegisterInput())
	assert.NoError(t, err)
	assert.Equal(t, user.RoleFarmer, usr.Role)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _, _ := setupUserServiceMocks(t)

	input := buyerRegisterInput()
	input.Email = nil

	_, err := svc.Register(input)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _, _, _ := setupUserServiceMocks(t)

	input := buyerRegisterInput()
	input.Role = ptrString("admin")

	_, err := svc.Register(input)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("jane@test.com").Return(user.User{ID: uuid.New()}, nil)

	_, err := svc.Register(buyerRegisterInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_FarmerFieldsRequired(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	input := farmerRegisterInput()
	input.FarmName = nil
	mockUser.EXPECT().GetUserByEmail("kamau@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Register(input)
	assert.ErrorIs(t, err, ErrFarmerFieldsRequired)
}

func TestRegister_PhoneTaken(t *testing.T) {
	svc, mockUser, mockFarmer, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("kamau@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockFarmer.EXPECT().GetFarmerByPhoneNumber("+254700111222").Return(farmer.Farmer{ID: 7}, nil)

	_, err := svc.Register(farmerRegisterInput())
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestRegister_SaveFails(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("jane@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(errors.New("db error"))

	_, err := svc.Register(buyerRegisterInput())
	assert.EqualError(t, err, "db error")
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	usr := user.User{ID: uuid.New(), Email: "jane@test.com", PasswordHash: string(hashed), Role: user.RoleBuyer}

	mockUser.EXPECT().GetUserByEmail("jane@test.com").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID string, role string, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	got, token, err := svc.Login("jane@test.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "jane@test.com", got.Email)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	usr := user.User{ID: uuid.New(), Email: "jane@test.com", PasswordHash: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("jane@test.com").Return(usr, nil)

	_, token, err := svc.Login("jane@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ghost@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost@test.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_TokenFailure(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	usr := user.User{ID: uuid.New(), Email: "jane@test.com", PasswordHash: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("jane@test.com").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID string, role string, exp time.Duration) (string, error) {
		return "", errors.New("signing failed")
	}
	defer func() { middleware.GenerateToken = oldGen }()

	_, _, err := svc.Login("jane@test.com", "secret123")
	assert.EqualError(t, err, "signing failed")
}

// --------------------- GetCurrentUser ---------------------
func TestGetCurrentUser_Success(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	id := uuid.New()
	mockUser.EXPECT().GetUserByID(id).Return(user.User{ID: id, Email: "jane@test.com"}, nil)

	usr, err := svc.GetCurrentUser(id)
	assert.NoError(t, err)
	assert.Equal(t, "jane@test.com", usr.Email)
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	svc, mockUser, _, _ := setupUserServiceMocks(t)

	id := uuid.New()
	mockUser.EXPECT().GetUserByID(id).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.GetCurrentUser(id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- Helper ---------------------
func ptrString(s string) *string { return &s }
