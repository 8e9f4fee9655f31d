package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
)

// ownerSelf restringe DescribeSnapshots aos snapshots da própria conta.
const ownerSelf = "self"

// EC2API is the subset of the EC2 client used by the inventory.
type EC2API interface {
	ec2.DescribeVolumesAPIClient
	ec2.DescribeSnapshotsAPIClient
}

// InventoryRepositoryImpl implementa o InventoryRepository sobre o EC2.
type InventoryRepositoryImpl struct {
	client EC2API
}

// NewInventoryRepository cria uma nova implementação do InventoryRepository.
func NewInventoryRepository(client EC2API) *InventoryRepositoryImpl {
	return &InventoryRepositoryImpl{client: client}
}

// ListVolumes percorre todas as páginas de DescribeVolumes.
func (r *InventoryRepositoryImpl) ListVolumes(ctx context.Context) ([]entity.Volume, error) {
	var volumes []entity.Volume

	paginator := ec2.NewDescribeVolumesPaginator(r.client, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes: %w", err)
		}

		for _, vol := range page.Volumes {
			volumes = append(volumes, entity.Volume{
				ID:        aws.ToString(vol.VolumeId),
				State:     string(vol.State),
				Encrypted: aws.ToBool(vol.Encrypted),
				Size:      int64(aws.ToInt32(vol.Size)),
			})
		}
	}

	return volumes, nil
}

// ListOwnedSnapshots percorre todas as páginas de DescribeSnapshots com OwnerIds=self.
func (r *InventoryRepositoryImpl) ListOwnedSnapshots(ctx context.Context) ([]entity.Snapshot, error) {
	var snapshots []entity.Snapshot

	paginator := ec2.NewDescribeSnapshotsPaginator(r.client, &ec2.DescribeSnapshotsInput{
		OwnerIds: []string{ownerSelf},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe snapshots: %w", err)
		}

		for _, snap := range page.Snapshots {
			snapshots = append(snapshots, entity.Snapshot{
				ID:        aws.ToString(snap.SnapshotId),
				VolumeID:  aws.ToString(snap.VolumeId),
				Encrypted: aws.ToBool(snap.Encrypted),
			})
		}
	}

	return snapshots, nil
}
