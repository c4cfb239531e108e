package usecase

import (
	"context"
	"strings"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// ClientUseCase manages a practitioner's patients. Document and notes are encrypted
// with the owning user's field key before they reach the repository, and decrypted
// on the way out; a field that no longer decrypts is returned as nil.
type ClientUseCase struct {
	clientRepo ClientRepository
	cipher     cryptoService.FieldCipher
}

// NewClientUseCase wires the repository and the per-user field cipher.
func NewClientUseCase(clientRepo ClientRepository, cipher cryptoService.FieldCipher) UseCase {
	return &ClientUseCase{
		clientRepo: clientRepo,
		cipher:     cipher,
	}
}

// Create encrypts the sensitive fields with the owner's key and stores the client.
func (uc *ClientUseCase) Create(ctx context.Context, userID int64, input domain.ClientInput) (*domain.Client, error) {
	client := &domain.Client{UserID: userID}
	if err := uc.apply(client, input); err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// Get retrieves a client of userID and decrypts its sensitive fields.
func (uc *ClientUseCase) Get(ctx context.Context, userID, id int64) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	uc.decrypt(client)
	return client, nil
}

// List retrieves the clients of userID ordered by ID with pagination.
func (uc *ClientUseCase) List(ctx context.Context, userID int64, offset, limit int) ([]*domain.Client, error) {
	clients, err := uc.clientRepo.List(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	for _, client := range clients {
		uc.decrypt(client)
	}
	return clients, nil
}

// Update replaces the client data. Sensitive fields are re-encrypted with a fresh IV.
func (uc *ClientUseCase) Update(
	ctx context.Context,
	userID, id int64,
	input domain.ClientInput,
) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(client, input); err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// Delete removes a client of userID.
func (uc *ClientUseCase) Delete(ctx context.Context, userID, id int64) error {
	return uc.clientRepo.Delete(ctx, userID, id)
}

func (uc *ClientUseCase) apply(client *domain.Client, input domain.ClientInput) error {
	document, err := cryptoService.EncryptOptional(uc.cipher, input.Document, client.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to encrypt client document")
	}

	notes, err := cryptoService.EncryptOptional(uc.cipher, input.Notes, client.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to encrypt client notes")
	}

	client.Name = strings.TrimSpace(input.Name)
	client.Email = strings.ToLower(strings.TrimSpace(input.Email))
	client.Phone = strings.TrimSpace(input.Phone)
	client.BirthDate = input.BirthDate
	client.DocumentEncrypted = document
	client.NotesEncrypted = notes
	client.Document = nonEmpty(input.Document)
	client.Notes = nonEmpty(input.Notes)
	return nil
}

func (uc *ClientUseCase) decrypt(client *domain.Client) {
	client.Document = cryptoService.DecryptOptional(uc.cipher, client.DocumentEncrypted, client.UserID)
	client.Notes = cryptoService.DecryptOptional(uc.cipher, client.NotesEncrypted, client.UserID)
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
