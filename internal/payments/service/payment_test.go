package service

import (
	"context"
	"testing"

	paymenterrors "aldosafaris/internal/payments/errors"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/model"
)

type mockPaymentRepository struct {
	createFunc        func(ctx context.Context, p *model.Payment) error
	findByIDFunc      func(ctx context.Context, id int64) (*model.Payment, error)
	findByBookingFunc func(ctx context.Context, bookingID int64) ([]*model.Payment, error)
	updateFunc        func(ctx context.Context, p *model.Payment) error
	deleteFunc        func(ctx context.Context, id int64) error
	bookingOwnerFunc  func(ctx context.Context, bookingID int64) (int64, error)
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	p.ID = 1
	return nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id int64) (*model.Payment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, paymenterrors.ErrNotFound
}

func (m *mockPaymentRepository) FindByBooking(ctx context.Context, bookingID int64) ([]*model.Payment, error) {
	if m.findByBookingFunc != nil {
		return m.findByBookingFunc(ctx, bookingID)
	}
	return []*model.Payment{}, nil
}

func (m *mockPaymentRepository) Update(ctx context.Context, p *model.Payment) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPaymentRepository) BookingOwner(ctx context.Context, bookingID int64) (int64, error) {
	if m.bookingOwnerFunc != nil {
		return m.bookingOwnerFunc(ctx, bookingID)
	}
	return 0, paymenterrors.ErrBookingNotFound
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

func ownedByUserOne(ctx context.Context, bookingID int64) (int64, error) {
	return 1, nil
}

func TestCreatePaymentRequiresAllFields(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepository{}, testConfig())

	_, err := svc.Create(context.Background(), 1, &model.PaymentCreate{
		BookingID: 5,
		Amount:    100,
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
	if appErr.Message != "All fields are required" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestCreatePaymentOnForeignBookingForbidden(t *testing.T) {
	repo := &mockPaymentRepository{bookingOwnerFunc: ownedByUserOne}
	svc := NewPaymentService(repo, testConfig())

	_, err := svc.Create(context.Background(), 2, &model.PaymentCreate{
		BookingID:     5,
		Amount:        100,
		PaymentMethod: "card",
		Status:        "completed",
	})
	if apperrors.AsAppError(err).StatusCode() != 403 {
		t.Errorf("paying a foreign booking should be 403, got %v", err)
	}
}

func TestCreatePaymentMissingBookingNotFound(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepository{}, testConfig())

	_, err := svc.Create(context.Background(), 1, &model.PaymentCreate{
		BookingID:     77,
		Amount:        100,
		PaymentMethod: "card",
		Status:        "completed",
	})
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("missing booking should be 404, got %v", err)
	}
}

func TestCreatePaymentStampsDateAndBooking(t *testing.T) {
	var stored *model.Payment
	repo := &mockPaymentRepository{
		bookingOwnerFunc: ownedByUserOne,
		createFunc: func(ctx context.Context, p *model.Payment) error {
			p.ID = 9
			stored = p
			return nil
		},
	}
	svc := NewPaymentService(repo, testConfig())

	payment, err := svc.Create(context.Background(), 1, &model.PaymentCreate{
		BookingID:     5,
		Amount:        250.50,
		PaymentMethod: "mpesa",
		Status:        "completed",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if stored.BookingID != 5 || stored.Amount != 250.50 {
		t.Errorf("stored payment = %+v", stored)
	}
	if stored.PaymentDate.IsZero() {
		t.Error("payment_date was not stamped")
	}
	if payment.ID != 9 {
		t.Errorf("payment.ID = %d, want 9", payment.ID)
	}
}

func TestGetPaymentOwnershipIsTransitive(t *testing.T) {
	repo := &mockPaymentRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*model.Payment, error) {
			return &model.Payment{ID: id, BookingID: 5, Amount: 100}, nil
		},
		bookingOwnerFunc: ownedByUserOne,
	}
	svc := NewPaymentService(repo, testConfig())

	if _, err := svc.GetByID(context.Background(), 1, 3); err != nil {
		t.Fatalf("booking owner read failed: %v", err)
	}

	_, err := svc.GetByID(context.Background(), 2, 3)
	if apperrors.AsAppError(err).StatusCode() != 403 {
		t.Errorf("non-owner read should be 403, got %v", err)
	}
}

func TestUpdatePaymentPartialLeavesOtherFields(t *testing.T) {
	existing := &model.Payment{ID: 3, BookingID: 5, Amount: 100, PaymentMethod: "card", Status: "pending"}
	var stored *model.Payment
	repo := &mockPaymentRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*model.Payment, error) {
			return existing, nil
		},
		bookingOwnerFunc: ownedByUserOne,
		updateFunc: func(ctx context.Context, p *model.Payment) error {
			stored = p
			return nil
		},
	}
	svc := NewPaymentService(repo, testConfig())

	status := "completed"
	updated, err := svc.Update(context.Background(), 1, 3, &model.PaymentUpdate{Status: &status})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if stored.Status != "completed" {
		t.Errorf("status = %q", stored.Status)
	}
	if stored.Amount != 100 || stored.PaymentMethod != "card" {
		t.Error("untouched fields were modified")
	}
	if updated.BookingID != 5 {
		t.Errorf("booking_id = %d, must never move on update", updated.BookingID)
	}
}

func TestListPaymentsForForeignBookingForbidden(t *testing.T) {
	repo := &mockPaymentRepository{bookingOwnerFunc: ownedByUserOne}
	svc := NewPaymentService(repo, testConfig())

	_, err := svc.ListByBooking(context.Background(), 2, 5)
	if apperrors.AsAppError(err).StatusCode() != 403 {
		t.Errorf("listing foreign booking payments should be 403, got %v", err)
	}
}

func TestDeletePaymentMissingIsNotFound(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepository{}, testConfig())

	err := svc.Delete(context.Background(), 1, 404)
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("missing payment should be 404, got %v", err)
	}
}
