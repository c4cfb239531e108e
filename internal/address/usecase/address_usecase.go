package usecase

import (
	"context"
	"strings"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// AddressUseCase manages the addresses of a patient. Every operation first checks
// that the client belongs to the user in the request, and the street line is
// encrypted with that user's field key.
type AddressUseCase struct {
	addressRepo AddressRepository
	clientRepo  ClientRepository
	cipher      cryptoService.FieldCipher
}

// NewAddressUseCase returns an AddressUseCase.
func NewAddressUseCase(
	addressRepo AddressRepository,
	clientRepo ClientRepository,
	cipher cryptoService.FieldCipher,
) UseCase {
	return &AddressUseCase{
		addressRepo: addressRepo,
		clientRepo:  clientRepo,
		cipher:      cipher,
	}
}

// Create stores a new address for a client of userID.
func (uc *AddressUseCase) Create(
	ctx context.Context,
	userID, clientID int64,
	input domain.AddressInput,
) (*domain.Address, error) {
	if err := uc.checkClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	address := &domain.Address{ClientID: clientID}
	if err := uc.apply(address, userID, input); err != nil {
		return nil, err
	}

	if err := uc.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// Get retrieves an address and decrypts the street line.
func (uc *AddressUseCase) Get(ctx context.Context, userID, clientID, id int64) (*domain.Address, error) {
	if err := uc.checkClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	address, err := uc.addressRepo.GetByID(ctx, clientID, id)
	if err != nil {
		return nil, err
	}

	uc.decrypt(address, userID)
	return address, nil
}

// List retrieves every address of a client.
func (uc *AddressUseCase) List(ctx context.Context, userID, clientID int64) ([]*domain.Address, error) {
	if err := uc.checkClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	addresses, err := uc.addressRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	for _, address := range addresses {
		uc.decrypt(address, userID)
	}
	return addresses, nil
}

// Update replaces an address. The street line is re-encrypted with a fresh IV.
func (uc *AddressUseCase) Update(
	ctx context.Context,
	userID, clientID, id int64,
	input domain.AddressInput,
) (*domain.Address, error) {
	if err := uc.checkClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	address, err := uc.addressRepo.GetByID(ctx, clientID, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(address, userID, input); err != nil {
		return nil, err
	}

	if err := uc.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete removes an address of a client.
func (uc *AddressUseCase) Delete(ctx context.Context, userID, clientID, id int64) error {
	if err := uc.checkClient(ctx, userID, clientID); err != nil {
		return err
	}
	return uc.addressRepo.Delete(ctx, clientID, id)
}

func (uc *AddressUseCase) checkClient(ctx context.Context, userID, clientID int64) error {
	_, err := uc.clientRepo.GetByID(ctx, userID, clientID)
	return err
}

func (uc *AddressUseCase) apply(address *domain.Address, userID int64, input domain.AddressInput) error {
	street := strings.TrimSpace(input.Street)
	encrypted, err := uc.cipher.Encrypt(street, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to encrypt address street")
	}

	address.Street = &street
	address.StreetEncrypted = encrypted
	address.Number = strings.TrimSpace(input.Number)
	address.Complement = strings.TrimSpace(input.Complement)
	address.District = strings.TrimSpace(input.District)
	address.City = strings.TrimSpace(input.City)
	address.State = strings.ToUpper(strings.TrimSpace(input.State))
	address.ZipCode = strings.TrimSpace(input.ZipCode)
	return nil
}

func (uc *AddressUseCase) decrypt(address *domain.Address, userID int64) {
	address.Street = cryptoService.DecryptOptional(uc.cipher, address.StreetEncrypted, userID)
}
