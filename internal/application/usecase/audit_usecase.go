package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
	"github.com/diillson/aws-storage-audit-go/internal/domain/repository"
	"github.com/diillson/aws-storage-audit-go/internal/shared/types"
)

const reportContentType = "application/json"

// AuditUseCase handles the storage audit: inventory read, tally and publication.
type AuditUseCase struct {
	inventoryRepo repository.InventoryRepository
	storageRepo   repository.StorageRepository
	logger        types.Logger
}

// NewAuditUseCase creates a new audit use case.
func NewAuditUseCase(
	inventoryRepo repository.InventoryRepository,
	storageRepo repository.StorageRepository,
	logger types.Logger,
) *AuditUseCase {
	return &AuditUseCase{
		inventoryRepo: inventoryRepo,
		storageRepo:   storageRepo,
		logger:        logger,
	}
}

// RunAudit lê o inventário, calcula o relatório, grava-o no bucket e o retorna.
// Nenhum erro é tratado localmente: falhas de leitura, bucket ausente ou falha de
// escrita são devolvidas ao chamador sem retry.
func (uc *AuditUseCase) RunAudit(ctx context.Context, bucket string) (entity.AuditReport, error) {
	if bucket == "" {
		return entity.AuditReport{}, types.ErrMissingBucket
	}

	report, err := uc.CollectReport(ctx)
	if err != nil {
		return entity.AuditReport{}, err
	}

	if err := uc.PublishReport(ctx, bucket, report); err != nil {
		return entity.AuditReport{}, err
	}

	return report, nil
}

// CollectReport lê volumes e snapshots e acumula os contadores, sem gravar nada.
func (uc *AuditUseCase) CollectReport(ctx context.Context) (entity.AuditReport, error) {
	volumes, err := uc.inventoryRepo.ListVolumes(ctx)
	if err != nil {
		return entity.AuditReport{}, fmt.Errorf("error listing volumes: %w", err)
	}
	uc.logger.LogInfo("Fetched %d volumes", len(volumes))

	snapshots, err := uc.inventoryRepo.ListOwnedSnapshots(ctx)
	if err != nil {
		return entity.AuditReport{}, fmt.Errorf("error listing snapshots: %w", err)
	}
	uc.logger.LogInfo("Fetched %d owned snapshots", len(snapshots))

	return entity.NewAuditReport(volumes, snapshots), nil
}

// PublishReport serializa o relatório e sobrescreve o objeto de métricas no bucket.
func (uc *AuditUseCase) PublishReport(ctx context.Context, bucket string, report entity.AuditReport) error {
	if bucket == "" {
		return types.ErrMissingBucket
	}

	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error encoding audit report: %w", err)
	}

	if err := uc.storageRepo.PutObject(ctx, bucket, entity.ReportObjectKey, body, reportContentType); err != nil {
		return fmt.Errorf("error writing s3://%s/%s: %w", bucket, entity.ReportObjectKey, err)
	}

	uc.logger.LogSuccess("Audit report written to s3://%s/%s", bucket, entity.ReportObjectKey)
	return nil
}
