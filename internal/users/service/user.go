package service

import (
	"context"
	"errors"

	usererrors "aldosafaris/internal/users/errors"
	"aldosafaris/internal/users/repository"
	"aldosafaris/internal/users/validator"
	"aldosafaris/pkg/auth"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/model"
	"aldosafaris/pkg/sanitizer"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, reg *model.UserRegistration) (*model.User, error)
	Login(ctx context.Context, creds *model.Credentials) (*model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	Update(ctx context.Context, callerID, id int64, updates *model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.UserValidator
	tokens    *auth.TokenManager
	cfg       *config.Config
}

func NewUserService(
	repo repository.UserRepository,
	validator *validator.UserValidator,
	tokens *auth.TokenManager,
	cfg *config.Config,
) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		tokens:    tokens,
		cfg:       cfg,
	}
}

func (s *userService) Register(ctx context.Context, reg *model.UserRegistration) (*model.User, error) {
	reg.UserName = sanitizer.TrimAndNormalize(reg.UserName)
	reg.Email = sanitizer.NormalizeEmail(reg.Email)
	reg.Contact = sanitizer.NormalizeContact(reg.Contact)

	if err := s.validator.ValidateRegistration(reg); err != nil {
		s.cfg.Log.Warn("User registration validation failed",
			"user_name", reg.UserName,
			"error", err,
		)
		return nil, apperrors.Validation("User registration failed", map[string]any{
			"error": err.Error(),
		})
	}

	if exists, err := s.repo.ExistsByEmail(ctx, reg.Email); err != nil {
		return nil, apperrors.Internal("Failed to check email availability", err)
	} else if exists {
		return nil, apperrors.Conflict("This email is already registered")
	}
	if exists, err := s.repo.ExistsByContact(ctx, reg.Contact); err != nil {
		return nil, apperrors.Internal("Failed to check contact availability", err)
	} else if exists {
		return nil, apperrors.Conflict("This contact is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	user := &model.User{
		UserName:     reg.UserName,
		Email:        reg.Email,
		Contact:      reg.Contact,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if dup := duplicateToConflict(err); dup != nil {
			return nil, dup
		}
		s.cfg.Log.Error("Failed to create user", "user_name", reg.UserName, "error", err)
		return nil, apperrors.Internal("Failed to register user", err)
	}

	s.cfg.Log.Info("User registered successfully",
		"id", user.ID,
		"user_name", user.UserName,
	)
	return user, nil
}

func (s *userService) Login(ctx context.Context, creds *model.Credentials) (*model.TokenPair, error) {
	creds.Email = sanitizer.NormalizeEmail(creds.Email)

	if err := s.validator.ValidateCredentials(creds); err != nil {
		return nil, apperrors.Validation("Login failed", map[string]any{
			"error": err.Error(),
		})
	}

	user, err := s.repo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, usererrors.ErrNotFound) {
			// Same response as a wrong password so the endpoint does
			// not leak which emails are registered.
			return nil, apperrors.Unauthorized("Invalid email or password")
		}
		s.cfg.Log.Error("Failed to look up user for login", "error", err)
		return nil, apperrors.Internal("Failed to log in", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	access, refresh, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("User logged in", "id", user.ID)
	return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	userID, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	access, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{AccessToken: access}, nil
}

func (s *userService) Update(ctx context.Context, callerID, id int64, updates *model.UserUpdate) (*model.User, error) {
	if callerID != id {
		return nil, apperrors.Forbidden("You are not authorized to perform this action")
	}

	s.sanitizeUpdate(updates)
	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, apperrors.Validation("User update failed", map[string]any{
			"error": err.Error(),
		})
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, usererrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("User", id)
		}
		return nil, apperrors.Internal("Failed to check user existence", err)
	}

	merged, err := s.mergeUpdates(existing, updates)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		if dup := duplicateToConflict(err); dup != nil {
			return nil, dup
		}
		if errors.Is(err, usererrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("User", id)
		}
		s.cfg.Log.Error("Failed to update user", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update user", err)
	}

	s.cfg.Log.Info("User updated successfully", "id", id)
	return merged, nil
}

func (s *userService) Delete(ctx context.Context, callerID, id int64) error {
	if callerID != id {
		return apperrors.Forbidden("You are not authorized to perform this action")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, usererrors.ErrNotFound) {
			return apperrors.NotFoundWithID("User", id)
		}
		s.cfg.Log.Error("Failed to delete user", "id", id, "error", err)
		return apperrors.Internal("Failed to delete user", err)
	}

	s.cfg.Log.Info("User deleted successfully", "id", id)
	return nil
}

func (s *userService) sanitizeUpdate(updates *model.UserUpdate) {
	if updates.UserName != nil {
		*updates.UserName = sanitizer.TrimAndNormalize(*updates.UserName)
	}
	if updates.Email != nil {
		*updates.Email = sanitizer.NormalizeEmail(*updates.Email)
	}
	if updates.Contact != nil {
		*updates.Contact = sanitizer.NormalizeContact(*updates.Contact)
	}
}

func (s *userService) mergeUpdates(existing *model.User, updates *model.UserUpdate) (*model.User, error) {
	merged := *existing

	if updates.UserName != nil {
		merged.UserName = *updates.UserName
	}
	if updates.Email != nil {
		merged.Email = *updates.Email
	}
	if updates.Contact != nil {
		merged.Contact = *updates.Contact
	}
	if updates.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*updates.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Internal("Failed to hash password", err)
		}
		merged.PasswordHash = string(hash)
	}

	return &merged, nil
}

func duplicateToConflict(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, usererrors.ErrDuplicateEmail):
		return apperrors.Conflict("This email is already registered")
	case errors.Is(err, usererrors.ErrDuplicateContact):
		return apperrors.Conflict("This contact is already registered")
	case errors.Is(err, usererrors.ErrDuplicateUserName):
		return apperrors.Conflict("This user name is already registered")
	default:
		return nil
	}
}
