package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
	"github.com/diillson/aws-storage-audit-go/internal/shared/types"
)

type mockInventoryRepo struct{ mock.Mock }

func (m *mockInventoryRepo) ListVolumes(ctx context.Context) ([]entity.Volume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Volume), args.Error(1)
}

func (m *mockInventoryRepo) ListOwnedSnapshots(ctx context.Context) ([]entity.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Snapshot), args.Error(1)
}

type mockStorageRepo struct{ mock.Mock }

func (m *mockStorageRepo) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	args := m.Called(ctx, bucket, key, body, contentType)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) LogInfo(string, ...interface{})    {}
func (nopLogger) LogWarning(string, ...interface{}) {}
func (nopLogger) LogError(string, ...interface{})   {}
func (nopLogger) LogSuccess(string, ...interface{}) {}

func TestRunAudit_WritesAndReturnsSameDocument(t *testing.T) {
	ctx := context.Background()
	inv := new(mockInventoryRepo)
	store := new(mockStorageRepo)

	inv.On("ListVolumes", mock.Anything).Return([]entity.Volume{
		{ID: "vol-1", State: "available", Encrypted: false, Size: 10},
		{ID: "vol-2", State: "in-use", Encrypted: true, Size: 20},
	}, nil)
	inv.On("ListOwnedSnapshots", mock.Anything).Return([]entity.Snapshot{{ID: "snap-1", Encrypted: false}}, nil)

	var written []byte
	store.On("PutObject", mock.Anything, "audit-bucket", "metrics_output.json", mock.AnythingOfType("[]uint8"), "application/json").
		Run(func(args mock.Arguments) { written = args.Get(3).([]byte) }).
		Return(nil).Once()

	uc := NewAuditUseCase(inv, store, nopLogger{})
	report, err := uc.RunAudit(ctx, "audit-bucket")
	require.NoError(t, err)

	assert.Equal(t, entity.AuditReport{
		UnattachedVolumes:     entity.VolumeTally{Count: 1, Size: 10},
		NonEncryptedVolumes:   entity.VolumeTally{Count: 1, Size: 10},
		NonEncryptedSnapshots: entity.SnapshotTally{Count: 1},
	}, report)

	returned, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, string(returned), string(written))

	inv.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestRunAudit_EmptyInventory(t *testing.T) {
	inv := new(mockInventoryRepo)
	store := new(mockStorageRepo)
	inv.On("ListVolumes", mock.Anything).Return([]entity.Volume{}, nil)
	inv.On("ListOwnedSnapshots", mock.Anything).Return([]entity.Snapshot{}, nil)
	store.On("PutObject", mock.Anything, "b", entity.ReportObjectKey, mock.Anything, mock.Anything).Return(nil)

	report, err := NewAuditUseCase(inv, store, nopLogger{}).RunAudit(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, entity.AuditReport{}, report)
}

func TestRunAudit_MissingBucket(t *testing.T) {
	inv := new(mockInventoryRepo)
	store := new(mockStorageRepo)

	_, err := NewAuditUseCase(inv, store, nopLogger{}).RunAudit(context.Background(), "")
	assert.ErrorIs(t, err, types.ErrMissingBucket)

	inv.AssertNotCalled(t, "ListVolumes", mock.Anything)
	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunAudit_VolumeListingFails(t *testing.T) {
	inv := new(mockInventoryRepo)
	store := new(mockStorageRepo)
	boom := errors.New("UnauthorizedOperation")
	inv.On("ListVolumes", mock.Anything).Return(nil, boom)

	_, err := NewAuditUseCase(inv, store, nopLogger{}).RunAudit(context.Background(), "b")
	assert.ErrorIs(t, err, boom)

	inv.AssertNotCalled(t, "ListOwnedSnapshots", mock.Anything)
	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunAudit_SnapshotListingFails(t *testing.T) {
	inv := new(mockInventoryRepo)
	store := new(mockStorageRepo)
	boom := errors.New("throttled")
	inv.On("ListVolumes", mock.Anything).Return([]entity.Volume{}, nil)
	inv.On("ListOwnedSnapshots", mock.Anything).Return(nil, boom)

	_, err := NewAuditUseCase(inv, store, nopLogger{}).RunAudit(context.Background(), "b")
	assert.ErrorIs(t, err, boom)
	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunAudit_WriteFails(t *testing.T) {
	inv := new(mockInventoryRepo)
	store := new(mockStorageRepo)
	boom := errors.New("AccessDenied")
	inv.On("ListVolumes", mock.Anything).Return([]entity.Volume{}, nil)
	inv.On("ListOwnedSnapshots", mock.Anything).Return([]entity.Snapshot{}, nil)
	store.On("PutObject", mock.Anything, "b", entity.ReportObjectKey, mock.Anything, mock.Anything).Return(boom).Once()

	_, err := NewAuditUseCase(inv, store, nopLogger{}).RunAudit(context.Background(), "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://b/metrics_output.json")
	store.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestCollectReport_DoesNotWrite(t *testing.T) {
	inv := new(mockInventoryRepo)
	store := new(mockStorageRepo)
	inv.On("ListVolumes", mock.Anything).Return([]entity.Volume{
		{State: "available", Encrypted: true, Size: 5},
		{State: "available", Encrypted: false, Size: 7},
	}, nil)
	inv.On("ListOwnedSnapshots", mock.Anything).Return([]entity.Snapshot{{Encrypted: true}}, nil)

	report, err := NewAuditUseCase(inv, store, nopLogger{}).CollectReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.VolumeTally{Count: 2, Size: 12}, report.UnattachedVolumes)
	assert.Equal(t, entity.VolumeTally{Count: 1, Size: 7}, report.NonEncryptedVolumes)
	assert.Equal(t, 0, report.NonEncryptedSnapshots.Count)
	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
