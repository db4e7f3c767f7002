package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/audit"
	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
	"github.com/farmart-ke/farmart-backend/internal/repository"
	"github.com/farmart-ke/farmart-backend/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupAuditServiceMocks(t *testing.T) (*AuditService, *AdminService, *mock.MockAuditRepo, *mock.MockFarmerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAudit := mock.NewMockAuditRepo(ctrl)
	mockFarmer := mock.NewMockFarmerRepo(ctrl)
	repos := &repository.Repos{
		Audit:  mockAudit,
		Farmer: mockFarmer,
	}
	return NewAuditService(repos), NewAdminService(repos), mockAudit, mockFarmer
}

// --------------------- QueryAuditLogs ---------------------
func TestQueryAuditLogs_Success(t *testing.T) {
	auditSvc, _, mockAudit, _ := setupAuditServiceMocks(t)

	params := repository.AuditQueryParams{Limit: 100}
	mockAudit.EXPECT().GetAuditLogs(params).Return([]audit.AuditLog{
		{ID: 1, Action: "create", ResourceType: "animal"},
	}, nil)

	logs, err := auditSvc.QueryAuditLogs(params)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
}

// --------------------- CleanupOldLogs ---------------------
func TestCleanupOldLogs_Success(t *testing.T) {
	auditSvc, _, mockAudit, _ := setupAuditServiceMocks(t)

	mockAudit.EXPECT().DeleteOldAuditLogs(30).Return(nil)

	err := auditSvc.CleanupOldLogs(30)
	assert.NoError(t, err)
}

func TestCleanupOldLogs_Fail(t *testing.T) {
	auditSvc, _, mockAudit, _ := setupAuditServiceMocks(t)

	mockAudit.EXPECT().DeleteOldAuditLogs(30).Return(errors.New("db error"))

	err := auditSvc.CleanupOldLogs(30)
	assert.EqualError(t, err, "db error")
}

// --------------------- VerifyFarmer ---------------------
func TestVerifyFarmer_Success(t *testing.T) {
	_, adminSvc, _, mockFarmer := setupAuditServiceMocks(t)

	mockFarmer.EXPECT().GetFarmerByID(uint(3)).Return(farmer.Farmer{ID: 3, FarmName: "Njoroge Farm"}, nil)
	mockFarmer.EXPECT().SaveFarmer(gomock.Any()).DoAndReturn(func(f *farmer.Farmer) error {
		assert.True(t, f.IsVerified)
		return nil
	})

	before, after, err := adminSvc.VerifyFarmer(3, true)
	assert.NoError(t, err)
	assert.False(t, before.IsVerified)
	assert.True(t, after.IsVerified)
}

func TestVerifyFarmer_Revoke(t *testing.T) {
	_, adminSvc, _, mockFarmer := setupAuditServiceMocks(t)

	mockFarmer.EXPECT().GetFarmerByID(uint(3)).Return(farmer.Farmer{ID: 3, IsVerified: true}, nil)
	mockFarmer.EXPECT().SaveFarmer(gomock.Any()).Return(nil)

	before, after, err := adminSvc.VerifyFarmer(3, false)
	assert.NoError(t, err)
	assert.True(t, before.IsVerified)
	assert.False(t, after.IsVerified)
}

func TestVerifyFarmer_NotFound(t *testing.T) {
	_, adminSvc, _, mockFarmer := setupAuditServiceMocks(t)

	mockFarmer.EXPECT().GetFarmerByID(uint(99)).Return(farmer.Farmer{}, gorm.ErrRecordNotFound)

	_, _, err := adminSvc.VerifyFarmer(99, true)
	assert.ErrorIs(t, err, ErrFarmerNotFound)
}

func TestVerifyFarmer_SaveFails(t *testing.T) {
	_, adminSvc, _, mockFarmer := setupAuditServiceMocks(t)

	mockFarmer.EXPECT().GetFarmerByID(uint(3)).Return(farmer.Farmer{ID: 3}, nil)
	mockFarmer.EXPECT().SaveFarmer(gomock.Any()).Return(errors.New("db error"))

	_, _, err := adminSvc.VerifyFarmer(3, true)
	assert.EqualError(t, err, "db error")
}
