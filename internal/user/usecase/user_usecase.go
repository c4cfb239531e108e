package usecase

import (
	"context"
	"strings"

	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
	outboxDomain "github.com/jo4ovms/psychology-project/internal/outbox/domain"
	"github.com/jo4ovms/psychology-project/internal/user/domain"
	"github.com/jo4ovms/psychology-project/internal/user/service"
)

// UserUseCase registers and maintains practitioners. Plain passwords are hashed
// before they reach the repository, and registration also publishes user.created
// through the outbox.
type UserUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	outboxRepo      OutboxEventRepository
	passwordService service.PasswordService
}

// NewUserUseCase wires the user repository, the outbox and the password hasher.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	outboxRepo OutboxEventRepository,
	passwordService service.PasswordService,
) UseCase {
	return &UserUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		outboxRepo:      outboxRepo,
		passwordService: passwordService,
	}
}

// Register creates a user and a user.created event in the same transaction.
func (uc *UserUseCase) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RolePsychologist
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		Password: hashedPassword,
		Role:     role,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}

		event, err := outboxDomain.NewOutboxEvent(outboxDomain.EventTypeUserCreated, outboxDomain.UserCreatedPayload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   string(user.Role),
		})
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal event payload")
		}

		if err := uc.outboxRepo.Create(ctx, event); err != nil {
			return apperrors.Wrap(err, "failed to create outbox event")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by ID
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// List retrieves users ordered by ID with pagination.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// Update changes name, email and role of a user and re-hashes the password when one
// is given.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error) {
	if !input.Role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Email = normalizeEmail(input.Email)
	user.Role = input.Role

	if input.Password != nil {
		hashedPassword, err := uc.passwordService.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user and, through cascading foreign keys, everything the user owns
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.userRepo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
