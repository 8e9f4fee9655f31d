package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"

	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
)

// Auditor executa uma auditoria completa e grava o relatório no bucket.
type Auditor interface {
	RunAudit(ctx context.Context, bucket string) (entity.AuditReport, error)
}

// Handler is the function-runtime entry point. The event payload is ignored.
type Handler struct {
	auditor Auditor
	bucket  string
	log     *zerolog.Logger
}

// NewHandler cria um novo Handler para o bucket configurado no ambiente.
func NewHandler(auditor Auditor, bucket string, log *zerolog.Logger) *Handler {
	return &Handler{auditor: auditor, bucket: bucket, log: log}
}

// Invoke executa a auditoria e devolve o relatório, que o runtime serializa em JSON.
// Erros são apenas registrados e devolvidos; o runtime decide sobre retry e alertas.
func (h *Handler) Invoke(ctx context.Context, _ json.RawMessage) (entity.AuditReport, error) {
	log := h.log.With().Str("bucket", h.bucket).Logger()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.With().Str("request_id", lc.AwsRequestID).Logger()
	}

	start := time.Now()
	report, err := h.auditor.RunAudit(ctx, h.bucket)
	if err != nil {
		ev := log.Error().Err(err).Dur("elapsed", time.Since(start))
		if code := ErrorCode(err); code != "" {
			ev = ev.Str("error_code", code)
		}
		ev.Msg("storage audit failed")
		return entity.AuditReport{}, err
	}

	log.Info().
		Int("unattached_volumes", report.UnattachedVolumes.Count).
		Int("non_encrypted_volumes", report.NonEncryptedVolumes.Count).
		Int("non_encrypted_snapshots", report.NonEncryptedSnapshots.Count).
		Dur("elapsed", time.Since(start)).
		Msg("storage audit completed")

	return report, nil
}

// ErrorCode extrai o código de erro da API AWS, se houver.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
