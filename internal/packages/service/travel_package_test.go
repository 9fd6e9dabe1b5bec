package service

import (
	"context"
	"testing"

	packageerrors "aldosafaris/internal/packages/errors"
	"aldosafaris/internal/packages/validator"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/model"
)

type mockTravelPackageRepository struct {
	createFunc        func(ctx context.Context, tp *model.TravelPackage) error
	findByIDFunc      func(ctx context.Context, id int64) (*model.TravelPackage, error)
	findAvailableFunc func(ctx context.Context) ([]*model.TravelPackage, error)
	updateFunc        func(ctx context.Context, tp *model.TravelPackage) error
	deleteFunc        func(ctx context.Context, id int64) error
}

func (m *mockTravelPackageRepository) Create(ctx context.Context, tp *model.TravelPackage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tp)
	}
	tp.ID = 1
	return nil
}

func (m *mockTravelPackageRepository) FindByID(ctx context.Context, id int64) (*model.TravelPackage, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, packageerrors.ErrNotFound
}

func (m *mockTravelPackageRepository) FindAvailable(ctx context.Context) ([]*model.TravelPackage, error) {
	if m.findAvailableFunc != nil {
		return m.findAvailableFunc(ctx)
	}
	return []*model.TravelPackage{}, nil
}

func (m *mockTravelPackageRepository) Update(ctx context.Context, tp *model.TravelPackage) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, tp)
	}
	return nil
}

func (m *mockTravelPackageRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestService(repo *mockTravelPackageRepository) TravelPackageService {
	cfg := testConfig()
	return NewTravelPackageService(repo, validator.NewTravelPackageValidator(cfg.Log), cfg)
}

func TestCreatePackageDefaultsToAvailable(t *testing.T) {
	var stored *model.TravelPackage
	repo := &mockTravelPackageRepository{
		createFunc: func(ctx context.Context, tp *model.TravelPackage) error {
			tp.ID = 4
			stored = tp
			return nil
		},
	}
	svc := newTestService(repo)

	tp, err := svc.Create(context.Background(), &model.TravelPackageCreate{
		PackageName: "Safari Adventure",
		Price:       1200,
		Duration:    7,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !stored.Availability {
		t.Error("availability should default to true")
	}
	if stored.Destinations == nil || stored.Activities == nil {
		t.Error("array fields should default to empty, not nil")
	}
	if tp.ID != 4 {
		t.Errorf("package ID = %d, want 4", tp.ID)
	}
}

func TestCreatePackageExplicitUnavailable(t *testing.T) {
	var stored *model.TravelPackage
	repo := &mockTravelPackageRepository{
		createFunc: func(ctx context.Context, tp *model.TravelPackage) error {
			stored = tp
			return nil
		},
	}
	svc := newTestService(repo)

	off := false
	_, err := svc.Create(context.Background(), &model.TravelPackageCreate{
		PackageName:  "Draft Package",
		Price:        800,
		Duration:     3,
		Availability: &off,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if stored.Availability {
		t.Error("explicit availability=false was overridden")
	}
}

func TestCreatePackageMissingRequiredFields(t *testing.T) {
	svc := newTestService(&mockTravelPackageRepository{})

	_, err := svc.Create(context.Background(), &model.TravelPackageCreate{
		Description: "no name, no price",
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestUpdatePackagePartialLeavesOtherFields(t *testing.T) {
	existing := &model.TravelPackage{
		ID:           4,
		PackageName:  "Safari Adventure",
		Destinations: []string{"Kenya", "Tanzania"},
		Price:        1200,
		Duration:     7,
		Availability: true,
	}
	var stored *model.TravelPackage
	repo := &mockTravelPackageRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*model.TravelPackage, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, tp *model.TravelPackage) error {
			stored = tp
			return nil
		},
	}
	svc := newTestService(repo)

	price := 1500.0
	updated, err := svc.Update(context.Background(), 4, &model.TravelPackageUpdate{Price: &price})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if stored.Price != 1500 {
		t.Errorf("price = %v", stored.Price)
	}
	if stored.PackageName != "Safari Adventure" || stored.Duration != 7 {
		t.Error("untouched fields were modified")
	}
	if len(stored.Destinations) != 2 {
		t.Errorf("destinations = %v", stored.Destinations)
	}
	if updated.Price != 1500 {
		t.Errorf("returned price = %v", updated.Price)
	}
}

func TestUpdateMissingPackageNotFound(t *testing.T) {
	svc := newTestService(&mockTravelPackageRepository{})

	price := 900.0
	_, err := svc.Update(context.Background(), 77, &model.TravelPackageUpdate{Price: &price})
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("missing package should be 404, got %v", err)
	}
}

func TestListAvailableFiltersNothingItself(t *testing.T) {
	repo := &mockTravelPackageRepository{
		findAvailableFunc: func(ctx context.Context) ([]*model.TravelPackage, error) {
			return []*model.TravelPackage{
				{ID: 1, PackageName: "Safari Adventure", Availability: true},
			}, nil
		},
	}
	svc := newTestService(repo)

	packages, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable() error = %v", err)
	}
	if len(packages) != 1 {
		t.Errorf("got %d packages, want 1", len(packages))
	}
}

func TestDeleteMissingPackageNotFound(t *testing.T) {
	repo := &mockTravelPackageRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			return packageerrors.ErrNotFound
		},
	}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 77)
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("missing package should be 404, got %v", err)
	}
}
