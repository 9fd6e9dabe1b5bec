package service

import (
	"context"
	"errors"

	packageerrors "aldosafaris/internal/packages/errors"
	"aldosafaris/internal/packages/repository"
	"aldosafaris/internal/packages/validator"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/model"
	"aldosafaris/pkg/sanitizer"
)

// Travel packages are the shared catalog. Any authenticated user may
// manage them; there is no per-package owner.
type TravelPackageService interface {
	Create(ctx context.Context, tc *model.TravelPackageCreate) (*model.TravelPackage, error)
	GetByID(ctx context.Context, id int64) (*model.TravelPackage, error)
	ListAvailable(ctx context.Context) ([]*model.TravelPackage, error)
	Update(ctx context.Context, id int64, updates *model.TravelPackageUpdate) (*model.TravelPackage, error)
	Delete(ctx context.Context, id int64) error
}

type travelPackageService struct {
	repo      repository.TravelPackageRepository
	validator *validator.TravelPackageValidator
	cfg       *config.Config
}

func NewTravelPackageService(
	repo repository.TravelPackageRepository,
	validator *validator.TravelPackageValidator,
	cfg *config.Config,
) TravelPackageService {
	return &travelPackageService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *travelPackageService) Create(ctx context.Context, tc *model.TravelPackageCreate) (*model.TravelPackage, error) {
	tc.PackageName = sanitizer.TrimAndNormalize(tc.PackageName)

	if err := s.validator.ValidateCreate(tc); err != nil {
		s.cfg.Log.Warn("Travel package validation failed", "package_name", tc.PackageName, "error", err)
		return nil, apperrors.Validation("Package name, price, and duration are required", map[string]any{
			"error": err.Error(),
		})
	}

	availability := true
	if tc.Availability != nil {
		availability = *tc.Availability
	}

	tp := &model.TravelPackage{
		PackageName:  tc.PackageName,
		Description:  tc.Description,
		Destinations: tc.Destinations,
		Activities:   tc.Activities,
		Inclusions:   tc.Inclusions,
		Price:        tc.Price,
		Duration:     tc.Duration,
		Availability: availability,
		ImageURL:     tc.ImageURL,
	}
	if tp.Destinations == nil {
		tp.Destinations = []string{}
	}
	if tp.Activities == nil {
		tp.Activities = []string{}
	}

	if err := s.repo.Create(ctx, tp); err != nil {
		s.cfg.Log.Error("Failed to create travel package", "package_name", tp.PackageName, "error", err)
		return nil, apperrors.Internal("Failed to create travel package", err)
	}

	s.cfg.Log.Info("Travel package created successfully",
		"id", tp.ID,
		"package_name", tp.PackageName,
	)
	return tp, nil
}

func (s *travelPackageService) GetByID(ctx context.Context, id int64) (*model.TravelPackage, error) {
	tp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Travel package", id)
		}
		s.cfg.Log.Error("Failed to get travel package", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve travel package", err)
	}
	return tp, nil
}

func (s *travelPackageService) ListAvailable(ctx context.Context) ([]*model.TravelPackage, error) {
	packages, err := s.repo.FindAvailable(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list travel packages", "error", err)
		return nil, apperrors.Internal("Failed to retrieve travel packages", err)
	}
	return packages, nil
}

func (s *travelPackageService) Update(ctx context.Context, id int64, updates *model.TravelPackageUpdate) (*model.TravelPackage, error) {
	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, apperrors.Validation("Travel package update failed", map[string]any{
			"error": err.Error(),
		})
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Travel package", id)
		}
		return nil, apperrors.Internal("Failed to check travel package existence", err)
	}

	merged := s.mergeUpdates(existing, updates)
	if err := s.repo.Update(ctx, merged); err != nil {
		if errors.Is(err, packageerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Travel package", id)
		}
		s.cfg.Log.Error("Failed to update travel package", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update travel package", err)
	}

	s.cfg.Log.Info("Travel package updated successfully", "id", id)
	return merged, nil
}

func (s *travelPackageService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, packageerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Travel package", id)
		}
		s.cfg.Log.Error("Failed to delete travel package", "id", id, "error", err)
		return apperrors.Internal("Failed to delete travel package", err)
	}

	s.cfg.Log.Info("Travel package deleted successfully", "id", id)
	return nil
}

func (s *travelPackageService) mergeUpdates(existing *model.TravelPackage, updates *model.TravelPackageUpdate) *model.TravelPackage {
	merged := *existing

	if updates.PackageName != nil {
		merged.PackageName = sanitizer.TrimAndNormalize(*updates.PackageName)
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.Destinations != nil {
		merged.Destinations = *updates.Destinations
	}
	if updates.Activities != nil {
		merged.Activities = *updates.Activities
	}
	if updates.Inclusions != nil {
		merged.Inclusions = *updates.Inclusions
	}
	if updates.Price != nil {
		merged.Price = *updates.Price
	}
	if updates.Duration != nil {
		merged.Duration = *updates.Duration
	}
	if updates.Availability != nil {
		merged.Availability = *updates.Availability
	}
	if updates.ImageURL != nil {
		merged.ImageURL = updates.ImageURL
	}

	merged.ID = existing.ID
	return &merged
}
