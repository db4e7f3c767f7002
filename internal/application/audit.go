package application

import (
	"errors"

	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/audit"
	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

var ErrFarmerNotFound = errors.New("farmer not found")

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}

// AdminService covers the moderation surface: verifying farmers.
type AdminService struct {
	Repos *repository.Repos
}

func NewAdminService(repos *repository.Repos) *AdminService {
	return &AdminService{
		Repos: repos,
	}
}

// VerifyFarmer flips the verified flag and returns old and new state so
// the change can be audited.
func (s *AdminService) VerifyFarmer(id uint, verified bool) (farmer.Farmer, farmer.Farmer, error) {
	f, err := s.Repos.Farmer.GetFarmerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farmer.Farmer{}, farmer.Farmer{}, ErrFarmerNotFound
		}
		return farmer.Farmer{}, farmer.Farmer{}, err
	}

	before := f
	f.IsVerified = verified
	if err := s.Repos.Farmer.SaveFarmer(&f); err != nil {
		return farmer.Farmer{}, farmer.Farmer{}, err
	}
	return before, f, nil
}
