package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/animal"
	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
	"github.com/farmart-ke/farmart-backend/internal/repository"
	"github.com/farmart-ke/farmart-backend/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupAnimalServiceMocks(t *testing.T) (*AnimalService, *mock.MockAnimalRepo, *mock.MockFarmerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAnimal := mock.NewMockAnimalRepo(ctrl)
	mockFarmer := mock.NewMockFarmerRepo(ctrl)
	repos := &repository.Repos{
		Animal: mockAnimal,
		Farmer: mockFarmer,
	}
	svc := NewAnimalService(repos)
	return svc, mockAnimal, mockFarmer
}

// --------------------- ListAnimals ---------------------
func TestListAnimals_Success(t *testing.T) {
	svc, mockAnimal, _ := setupAnimalServiceMocks(t)

	animals := []animal.Animal{
		{ID: 1, Species: "Cow", Price: 185000},
		{ID: 2, Species: "Goat", Price: 12000},
	}
	mockAnimal.EXPECT().ListAnimals(gomock.Any()).Return(animals, int64(2), nil)

	result, total, err := svc.ListAnimals(animal.ListAnimalsQuery{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(2), total)
}

func TestListAnimals_PassesFilters(t *testing.T) {
	svc, mockAnimal, _ := setupAnimalServiceMocks(t)

	mockAnimal.EXPECT().ListAnimals(gomock.Any()).DoAndReturn(func(f repository.AnimalFilter) ([]animal.Animal, int64, error) {
		assert.Equal(t, "Cow", *f.Species)
		assert.Equal(t, "available", *f.Status)
		assert.Equal(t, 2, f.Page)
		return nil, 0, nil
	})

	query := animal.ListAnimalsQuery{
		Species: ptrString("Cow"),
		Status:  ptrString("available"),
		Page:    2,
		Limit:   10,
	}
	_, _, err := svc.ListAnimals(query)
	assert.NoError(t, err)
}

// --------------------- GetAnimal ---------------------
func TestGetAnimal_Success(t *testing.T) {
	svc, mockAnimal, _ := setupAnimalServiceMocks(t)

	mockAnimal.EXPECT().GetAnimalByID(uint(5)).Return(animal.Animal{ID: 5, Species: "Cow"}, nil)

	a, err := svc.GetAnimal(5)
	assert.NoError(t, err)
	assert.Equal(t, "Cow", a.Species)
}

func TestGetAnimal_NotFound(t *testing.T) {
	svc, mockAnimal, _ := setupAnimalServiceMocks(t)

	mockAnimal.EXPECT().GetAnimalByID(uint(99)).Return(animal.Animal{}, gorm.ErrRecordNotFound)

	_, err := svc.GetAnimal(99)
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}

// --------------------- CreateAnimal ---------------------
func TestCreateAnimal_Success(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().SaveAnimal(gomock.Any()).DoAndReturn(func(a *animal.Animal) error {
		assert.Equal(t, uint(3), a.FarmerID)
		assert.Equal(t, animal.StatusAvailable, a.Status)
		a.ID = 10
		return nil
	})

	input := animal.CreateAnimalInput{Species: "Cow", Price: 185000}
	a, err := svc.CreateAnimal(uid, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(10), a.ID)
}

func TestCreateAnimal_StatusOverride(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().SaveAnimal(gomock.Any()).DoAndReturn(func(a *animal.Animal) error {
		assert.Equal(t, animal.StatusReserved, a.Status)
		return nil
	})

	input := animal.CreateAnimalInput{Species: "Cow", Price: 185000, Status: ptrString("reserved")}
	_, err := svc.CreateAnimal(uid, input)
	assert.NoError(t, err)
}

func TestCreateAnimal_NoFarmerProfile(t *testing.T) {
	svc, _, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateAnimal(uid, animal.CreateAnimalInput{Species: "Cow", Price: 100})
	assert.ErrorIs(t, err, ErrFarmerProfileMissing)
}

// --------------------- UpdateAnimal ---------------------
func TestUpdateAnimal_Success(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().GetAnimalByID(uint(9)).Return(animal.Animal{ID: 9, FarmerID: 3, Species: "Cow", Price: 100000}, nil)
	mockAnimal.EXPECT().SaveAnimal(gomock.Any()).Return(nil)

	newPrice := 120000.0
	a, err := svc.UpdateAnimal(uid, 9, animal.UpdateAnimalInput{Price: &newPrice})
	assert.NoError(t, err)
	assert.Equal(t, 120000.0, a.Price)
	assert.Equal(t, "Cow", a.Species)
}

func TestUpdateAnimal_NotOwned(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().GetAnimalByID(uint(9)).Return(animal.Animal{ID: 9, FarmerID: 4}, nil)

	_, err := svc.UpdateAnimal(uid, 9, animal.UpdateAnimalInput{})
	assert.ErrorIs(t, err, ErrAnimalAccessDenied)
}

func TestUpdateAnimal_Missing(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().GetAnimalByID(uint(99)).Return(animal.Animal{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateAnimal(uid, 99, animal.UpdateAnimalInput{})
	assert.ErrorIs(t, err, ErrAnimalAccessDenied)
}

// --------------------- DeleteAnimal ---------------------
func TestDeleteAnimal_Success(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().GetAnimalByID(uint(9)).Return(animal.Animal{ID: 9, FarmerID: 3}, nil)
	mockAnimal.EXPECT().DeleteAnimal(uint(9)).Return(nil)

	err := svc.DeleteAnimal(uid, 9)
	assert.NoError(t, err)
}

func TestDeleteAnimal_Fail(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().GetAnimalByID(uint(9)).Return(animal.Animal{ID: 9, FarmerID: 3}, nil)
	mockAnimal.EXPECT().DeleteAnimal(uint(9)).Return(errors.New("delete fail"))

	err := svc.DeleteAnimal(uid, 9)
	assert.EqualError(t, err, "delete fail")
}

// --------------------- SetAnimalImage ---------------------
func TestSetAnimalImage_Success(t *testing.T) {
	svc, mockAnimal, mockFarmer := setupAnimalServiceMocks(t)

	uid := uuid.New()
	mockFarmer.EXPECT().GetFarmerByUserID(uid).Return(farmer.Farmer{ID: 3}, nil)
	mockAnimal.EXPECT().GetAnimalByID(uint(9)).Return(animal.Animal{ID: 9, FarmerID: 3}, nil)
	mockAnimal.EXPECT().SaveAnimal(gomock.Any()).DoAndReturn(func(a *animal.Animal) error {
		assert.Equal(t, "http://localhost:9000/farmart-media/animals/9/cow.jpg", *a.ImageURL)
		return nil
	})

	a, err := svc.SetAnimalImage(uid, 9, "http://localhost:9000/farmart-media/animals/9/cow.jpg")
	assert.NoError(t, err)
	assert.NotNil(t, a.ImageURL)
}
