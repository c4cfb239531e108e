package service

import (
	"context"
	"fmt"
	"net/url"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"

	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsProviderSchemes maps KMS_PROVIDER values to the keeper URL scheme they accept.
var kmsProviderSchemes = map[string]string{
	"localsecrets":  "base64key",
	"gcpkms":        "gcpkms",
	"awskms":        "awskms",
	"azurekeyvault": "azurekeyvault",
	"hashivault":    "hashivault",
}

// CheckKMSProvider rejects an unknown provider, or a key URI whose scheme belongs to
// another provider.
func CheckKMSProvider(provider, keyURI string) error {
	scheme, ok := kmsProviderSchemes[provider]
	if !ok {
		return fmt.Errorf("%w: unknown provider %q", cryptoDomain.ErrInvalidKMSProvider, provider)
	}
	u, err := url.Parse(keyURI)
	if err != nil || u.Scheme != scheme {
		return fmt.Errorf("%w: %s expects a %s:// key URI", cryptoDomain.ErrInvalidKMSProvider, provider, scheme)
	}
	return nil
}

type kmsService struct{}

// NewKMSService returns a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens the keeper at keyURI. The caller must Close it.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}
