package service

import (
	"context"
	"errors"
	"time"

	paymenterrors "aldosafaris/internal/payments/errors"
	"aldosafaris/internal/payments/repository"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/model"
)

type PaymentService interface {
	Create(ctx context.Context, callerID int64, pc *model.PaymentCreate) (*model.Payment, error)
	GetByID(ctx context.Context, callerID, id int64) (*model.Payment, error)
	ListByBooking(ctx context.Context, callerID, bookingID int64) ([]*model.Payment, error)
	Update(ctx context.Context, callerID, id int64, updates *model.PaymentUpdate) (*model.Payment, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type paymentService struct {
	repo repository.PaymentRepository
	cfg  *config.Config
	now  func() time.Time
}

func NewPaymentService(repo repository.PaymentRepository, cfg *config.Config) PaymentService {
	return &paymentService{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

func (s *paymentService) Create(ctx context.Context, callerID int64, pc *model.PaymentCreate) (*model.Payment, error) {
	if pc.BookingID == 0 || pc.Amount == 0 || pc.PaymentMethod == "" || pc.Status == "" {
		return nil, apperrors.Validation("All fields are required", nil)
	}

	if err := s.authorizeBooking(ctx, callerID, pc.BookingID, "add a payment to"); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		BookingID:     pc.BookingID,
		PaymentDate:   s.now().UTC(),
		Amount:        pc.Amount,
		PaymentMethod: pc.PaymentMethod,
		Status:        pc.Status,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		s.cfg.Log.Error("Failed to create payment", "booking_id", pc.BookingID, "error", err)
		return nil, apperrors.Internal("Failed to create payment", err)
	}

	s.cfg.Log.Info("Payment created successfully",
		"id", payment.ID,
		"booking_id", payment.BookingID,
		"amount", payment.Amount,
	)
	return payment, nil
}

func (s *paymentService) GetByID(ctx context.Context, callerID, id int64) (*model.Payment, error) {
	return s.findOwned(ctx, callerID, id, "view")
}

func (s *paymentService) ListByBooking(ctx context.Context, callerID, bookingID int64) ([]*model.Payment, error) {
	if err := s.authorizeBooking(ctx, callerID, bookingID, "view payments for"); err != nil {
		return nil, err
	}

	payments, err := s.repo.FindByBooking(ctx, bookingID)
	if err != nil {
		s.cfg.Log.Error("Failed to list payments", "booking_id", bookingID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve payments", err)
	}
	return payments, nil
}

func (s *paymentService) Update(ctx context.Context, callerID, id int64, updates *model.PaymentUpdate) (*model.Payment, error) {
	existing, err := s.findOwned(ctx, callerID, id, "update")
	if err != nil {
		return nil, err
	}

	merged := *existing
	if updates.Amount != nil {
		merged.Amount = *updates.Amount
	}
	if updates.PaymentMethod != nil {
		merged.PaymentMethod = *updates.PaymentMethod
	}
	if updates.Status != nil {
		merged.Status = *updates.Status
	}

	if err := s.repo.Update(ctx, &merged); err != nil {
		if errors.Is(err, paymenterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Payment", id)
		}
		s.cfg.Log.Error("Failed to update payment", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update payment", err)
	}

	s.cfg.Log.Info("Payment updated successfully", "id", id)
	return &merged, nil
}

func (s *paymentService) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := s.findOwned(ctx, callerID, id, "delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, paymenterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Payment", id)
		}
		s.cfg.Log.Error("Failed to delete payment", "id", id, "error", err)
		return apperrors.Internal("Failed to delete payment", err)
	}

	s.cfg.Log.Info("Payment deleted successfully", "id", id)
	return nil
}

// findOwned loads the payment and checks that the caller owns the
// booking it belongs to.
func (s *paymentService) findOwned(ctx context.Context, callerID, id int64, action string) (*model.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymenterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Payment", id)
		}
		s.cfg.Log.Error("Failed to get payment", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve payment", err)
	}

	ownerID, err := s.repo.BookingOwner(ctx, payment.BookingID)
	if err != nil {
		if errors.Is(err, paymenterrors.ErrBookingNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", payment.BookingID)
		}
		return nil, apperrors.Internal("Failed to resolve payment ownership", err)
	}
	if ownerID != callerID {
		return nil, apperrors.Forbidden("You are not authorized to " + action + " this payment")
	}
	return payment, nil
}

func (s *paymentService) authorizeBooking(ctx context.Context, callerID, bookingID int64, action string) error {
	ownerID, err := s.repo.BookingOwner(ctx, bookingID)
	if err != nil {
		if errors.Is(err, paymenterrors.ErrBookingNotFound) {
			return apperrors.NotFoundWithID("Booking", bookingID)
		}
		s.cfg.Log.Error("Failed to resolve booking owner", "booking_id", bookingID, "error", err)
		return apperrors.Internal("Failed to resolve booking ownership", err)
	}
	if ownerID != callerID {
		return apperrors.Forbidden("You are not authorized to " + action + " this booking")
	}
	return nil
}
