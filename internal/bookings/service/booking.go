package service

import (
	"context"
	"errors"
	"time"

	bookingerrors "aldosafaris/internal/bookings/errors"
	"aldosafaris/internal/bookings/repository"
	"aldosafaris/internal/bookings/validator"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/model"
	"aldosafaris/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, callerID int64, bc *model.BookingCreate) (*model.Booking, error)
	GetByID(ctx context.Context, callerID, id int64) (*model.Booking, error)
	ListByUser(ctx context.Context, callerID int64) ([]*model.Booking, error)
	Update(ctx context.Context, callerID, id int64, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Create records a booking owned by the caller. A user_id in the
// request body is ignored: ownership always derives from the token.
func (s *bookingService) Create(ctx context.Context, callerID int64, bc *model.BookingCreate) (*model.Booking, error) {
	bc.Destination = sanitizer.TrimAndNormalize(bc.Destination)

	if err := s.validator.ValidateCreate(bc); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "user_id", callerID, "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	start, err := validator.ParseTravelDate("travel_start_date", bc.TravelStartDate)
	if err != nil {
		return nil, apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}
	end, err := validator.ParseTravelDate("travel_end_date", bc.TravelEndDate)
	if err != nil {
		return nil, apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	packageID := bc.PackageID
	booking := &model.Booking{
		PackageID:       &packageID,
		UserID:          callerID,
		DateOfBooking:   s.now().UTC(),
		TravelStartDate: start,
		TravelEndDate:   end,
		TotalCost:       bc.TotalCost,
		PaymentStatus:   bc.PaymentStatus,
		BookingStatus:   bc.BookingStatus,
		Destination:     bc.Destination,
		Accommodation:   bc.Accommodation,
		Transportation:  bc.Transportation,
		Activities:      bc.Activities,
		BookingSource:   bc.BookingSource,
	}
	if booking.Activities == nil {
		booking.Activities = []string{}
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "user_id", callerID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"user_id", callerID,
		"destination", booking.Destination,
	)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, callerID, id int64) (*model.Booking, error) {
	booking, err := s.findOwned(ctx, callerID, id, "view")
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListByUser(ctx context.Context, callerID int64) ([]*model.Booking, error) {
	bookings, err := s.repo.FindByUser(ctx, callerID)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "user_id", callerID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) Update(ctx context.Context, callerID, id int64, updates *model.BookingUpdate) (*model.Booking, error) {
	existing, err := s.findOwned(ctx, callerID, id, "update")
	if err != nil {
		return nil, err
	}

	merged, err := s.mergeUpdates(existing, updates)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return merged, nil
}

func (s *bookingService) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := s.findOwned(ctx, callerID, id, "delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

// findOwned loads the booking and enforces that the caller owns it.
// Missing bookings surface as 404 before the ownership check runs.
func (s *bookingService) findOwned(ctx context.Context, callerID, id int64, action string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to get booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	if booking.UserID != callerID {
		return nil, apperrors.Forbidden("You are not authorized to " + action + " this booking")
	}
	return booking, nil
}

func (s *bookingService) mergeUpdates(existing *model.Booking, updates *model.BookingUpdate) (*model.Booking, error) {
	merged := *existing

	if updates.PackageID != nil {
		merged.PackageID = updates.PackageID
	}
	if updates.TravelStartDate != nil {
		start, err := validator.ParseTravelDate("travel_start_date", *updates.TravelStartDate)
		if err != nil {
			return nil, apperrors.Validation("Booking validation failed", map[string]any{
				"error": err.Error(),
			})
		}
		merged.TravelStartDate = start
	}
	if updates.TravelEndDate != nil {
		end, err := validator.ParseTravelDate("travel_end_date", *updates.TravelEndDate)
		if err != nil {
			return nil, apperrors.Validation("Booking validation failed", map[string]any{
				"error": err.Error(),
			})
		}
		merged.TravelEndDate = end
	}
	if updates.TotalCost != nil {
		merged.TotalCost = *updates.TotalCost
	}
	if updates.PaymentStatus != nil {
		merged.PaymentStatus = *updates.PaymentStatus
	}
	if updates.BookingStatus != nil {
		merged.BookingStatus = *updates.BookingStatus
	}
	if updates.Destination != nil {
		merged.Destination = sanitizer.TrimAndNormalize(*updates.Destination)
	}
	if updates.Accommodation != nil {
		merged.Accommodation = *updates.Accommodation
	}
	if updates.Transportation != nil {
		merged.Transportation = *updates.Transportation
	}
	if updates.Activities != nil {
		merged.Activities = *updates.Activities
	}
	if updates.BookingSource != nil {
		merged.BookingSource = *updates.BookingSource
	}

	merged.ID = existing.ID
	merged.UserID = existing.UserID
	merged.DateOfBooking = existing.DateOfBooking
	return &merged, nil
}
