package repository

import (
	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportAuditSummaryToCSV(summary entity.AuditSummary, filename, outputDir string) (string, error)
	ExportAuditSummaryToJSON(summary entity.AuditSummary, filename, outputDir string) (string, error)
	ExportAuditSummaryToPDF(summary entity.AuditSummary, filename, outputDir string) (string, error)
}
