package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	"github.com/jo4ovms/psychology-project/internal/address/usecase/mocks"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
)

const (
	testUserID   = int64(42)
	testClientID = int64(7)
)

func newAddressUseCase(t *testing.T) (UseCase, *mocks.MockAddressRepository, *mocks.MockClientRepository, cryptoService.FieldCipher) {
	t.Helper()
	addressRepo := &mocks.MockAddressRepository{}
	clientRepo := &mocks.MockClientRepository{}
	cipher := cryptoService.NewFieldCipher("address-test-secret")
	t.Cleanup(func() {
		addressRepo.AssertExpectations(t)
		clientRepo.AssertExpectations(t)
	})
	return NewAddressUseCase(addressRepo, clientRepo, cipher), addressRepo, clientRepo, cipher
}

func expectClient(clientRepo *mocks.MockClientRepository) {
	clientRepo.On("GetByID", mock.Anything, testUserID, testClientID).
		Return(&clientDomain.Client{ID: testClientID, UserID: testUserID}, nil).
		Once()
}

func TestAddressUseCase_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.AddressInput{
		Street:   " Rua das Flores ",
		Number:   "100",
		District: "Centro",
		City:     "São Paulo",
		State:    "sp",
		ZipCode:  "01000-000",
	}

	t.Run("Success_EncryptsStreetWithOwnerKey", func(t *testing.T) {
		uc, addressRepo, clientRepo, cipher := newAddressUseCase(t)
		expectClient(clientRepo)
		addressRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Address) bool {
			street, ok := cipher.Decrypt(a.StreetEncrypted.EncryptedText, a.StreetEncrypted.IV, testUserID)
			return ok && street == "Rua das Flores" && a.ClientID == testClientID && a.State == "SP"
		})).Return(nil).Once()

		address, err := uc.Create(ctx, testUserID, testClientID, input)

		require.NoError(t, err)
		require.NotNil(t, address.Street)
		assert.Equal(t, "Rua das Flores", *address.Street)
	})

	t.Run("Error_ClientOfAnotherUser", func(t *testing.T) {
		uc, _, clientRepo, _ := newAddressUseCase(t)
		clientRepo.On("GetByID", mock.Anything, int64(99), testClientID).
			Return(nil, clientDomain.ErrClientNotFound).
			Once()

		address, err := uc.Create(ctx, 99, testClientID, input)

		assert.Nil(t, address)
		assert.ErrorIs(t, err, clientDomain.ErrClientNotFound)
	})
}

func TestAddressUseCase_GetAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("Get_Success", func(t *testing.T) {
		uc, addressRepo, clientRepo, cipher := newAddressUseCase(t)
		street, err := cipher.Encrypt("Rua das Flores", testUserID)
		require.NoError(t, err)
		expectClient(clientRepo)
		addressRepo.On("GetByID", ctx, testClientID, int64(3)).
			Return(&domain.Address{ID: 3, ClientID: testClientID, StreetEncrypted: street}, nil).
			Once()

		address, err := uc.Get(ctx, testUserID, testClientID, 3)

		require.NoError(t, err)
		assert.Equal(t, "Rua das Flores", *address.Street)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		uc, addressRepo, clientRepo, _ := newAddressUseCase(t)
		expectClient(clientRepo)
		addressRepo.On("GetByID", ctx, testClientID, int64(3)).Return(nil, domain.ErrAddressNotFound).Once()

		_, err := uc.Get(ctx, testUserID, testClientID, 3)

		assert.ErrorIs(t, err, domain.ErrAddressNotFound)
	})

	t.Run("List_UndecryptableStreetIsNull", func(t *testing.T) {
		uc, addressRepo, clientRepo, cipher := newAddressUseCase(t)
		own, err := cipher.Encrypt("Rua A", testUserID)
		require.NoError(t, err)
		foreign, err := cipher.Encrypt("Rua B", testUserID+1)
		require.NoError(t, err)
		expectClient(clientRepo)
		addressRepo.On("ListByClient", ctx, testClientID).Return([]*domain.Address{
			{ID: 1, StreetEncrypted: own},
			{ID: 2, StreetEncrypted: foreign},
		}, nil).Once()

		addresses, err := uc.List(ctx, testUserID, testClientID)

		require.NoError(t, err)
		require.Len(t, addresses, 2)
		assert.Equal(t, "Rua A", *addresses[0].Street)
		assert.Nil(t, addresses[1].Street)
	})
}

func TestAddressUseCase_Update(t *testing.T) {
	ctx := context.Background()
	uc, addressRepo, clientRepo, cipher := newAddressUseCase(t)
	old, err := cipher.Encrypt("Rua Velha", testUserID)
	require.NoError(t, err)
	expectClient(clientRepo)
	addressRepo.On("GetByID", ctx, testClientID, int64(3)).
		Return(&domain.Address{ID: 3, ClientID: testClientID, StreetEncrypted: old}, nil).
		Once()
	addressRepo.On("Update", ctx, mock.MatchedBy(func(a *domain.Address) bool {
		street, ok := cipher.Decrypt(a.StreetEncrypted.EncryptedText, a.StreetEncrypted.IV, testUserID)
		return ok && street == "Rua Nova" && a.City == "Campinas"
	})).Return(nil).Once()

	address, err := uc.Update(ctx, testUserID, testClientID, 3, domain.AddressInput{Street: "Rua Nova", City: "Campinas"})

	require.NoError(t, err)
	assert.Equal(t, "Rua Nova", *address.Street)
}

func TestAddressUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, addressRepo, clientRepo, _ := newAddressUseCase(t)
		expectClient(clientRepo)
		addressRepo.On("Delete", ctx, testClientID, int64(3)).Return(nil).Once()

		assert.NoError(t, uc.Delete(ctx, testUserID, testClientID, 3))
	})

	t.Run("Error_ClientNotFound", func(t *testing.T) {
		uc, _, clientRepo, _ := newAddressUseCase(t)
		clientRepo.On("GetByID", mock.Anything, testUserID, testClientID).
			Return(nil, clientDomain.ErrClientNotFound).
			Once()

		err := uc.Delete(ctx, testUserID, testClientID, 3)

		assert.ErrorIs(t, err, clientDomain.ErrClientNotFound)
	})
}
