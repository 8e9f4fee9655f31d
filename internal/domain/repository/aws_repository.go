package repository

import (
	"context"

	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
)

// InventoryRepository defines read access to the block-storage inventory.
type InventoryRepository interface {
	// ListVolumes returns every volume in the account/region.
	ListVolumes(ctx context.Context) ([]entity.Volume, error)
	// ListOwnedSnapshots returns every snapshot owned by the caller.
	ListOwnedSnapshots(ctx context.Context) ([]entity.Snapshot, error)
}

// StorageRepository defines write access to the object store.
// Implementations always request server-side encryption at rest.
type StorageRepository interface {
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// IdentityRepository resolves the identity behind the configured credentials.
type IdentityRepository interface {
	GetAccountID(ctx context.Context) (string, error)
}
