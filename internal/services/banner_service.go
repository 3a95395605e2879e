package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"katalog/internal/dto"
	"katalog/internal/models"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
)

// BannerService handles business logic related to banners. Banner updates are
// partial-merge, like categories.
type BannerService struct {
	bannerRepo repositories.BannerRepository
	validate   *validator.Validate
}

// NewBannerService creates a new BannerService.
func NewBannerService(bannerRepo repositories.BannerRepository) *BannerService {
	v := validator.New()
	dto.RegisterValidations(v)
	return &BannerService{
		bannerRepo: bannerRepo,
		validate:   v,
	}
}

// List returns the requested page of banners and the total match count.
func (s *BannerService) List(filter repositories.BannerFilter, page pagination.Request) ([]models.Banner, int64, error) {
	return s.bannerRepo.List(filter, page)
}

// GetByID retrieves a single banner. A malformed or unknown id yields
// ErrNotFound.
func (s *BannerService) GetByID(id string) (*models.Banner, error) {
	bid, err := parseID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	banner, err := s.bannerRepo.GetByID(bid)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	return banner, nil
}

// Create validates the request and persists a new banner. Status defaults to
// false when absent.
func (s *BannerService) Create(req dto.BannerRequest) (*models.Banner, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Messages: dto.Messages(err)}
	}

	status := false
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now()
	banner := &models.Banner{
		ID:        uuid.New(),
		Title:     *req.Title,
		Status:    status,
		ImageURL:  *req.ImageURL,
		Discovery: *req.Discovery,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.bannerRepo.Save(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Update merges the supplied fields into an existing banner. Absent fields
// are left untouched; UpdatedAt is refreshed either way.
func (s *BannerService) Update(id string, req dto.BannerRequest) (*models.Banner, error) {
	bid, err := parseID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	banner, err := s.bannerRepo.GetByID(bid)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Status != nil {
		banner.Status = *req.Status
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.Discovery != nil {
		banner.Discovery = *req.Discovery
	}
	banner.UpdatedAt = time.Now()

	if err := s.bannerRepo.Save(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete removes a banner. A malformed or unknown id yields ErrNotFound.
func (s *BannerService) Delete(id string) error {
	bid, err := parseID(id)
	if err != nil {
		return ErrNotFound
	}
	banner, err := s.bannerRepo.GetByID(bid)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrNotFound
	}
	return s.bannerRepo.Delete(banner)
}
