package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
	"github.com/diillson/aws-storage-audit-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// summaryRow é uma linha (categoria, quantidade, tamanho) usada em CSV e PDF.
type summaryRow struct {
	Category string
	Count    int
	Size     string
}

func summaryRows(report entity.AuditReport) []summaryRow {
	return []summaryRow{
		{"Unattached volumes", report.UnattachedVolumes.Count, strconv.FormatInt(report.UnattachedVolumes.Size, 10)},
		{"Non-encrypted volumes", report.NonEncryptedVolumes.Count, strconv.FormatInt(report.NonEncryptedVolumes.Size, 10)},
		{"Non-encrypted snapshots", report.NonEncryptedSnapshots.Count, "-"},
	}
}

func (r *ExportRepositoryImpl) ExportAuditSummaryToCSV(summary entity.AuditSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating audit CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"Account ID", "Region", "Category", "Count", "Size (GiB)"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range summaryRows(summary.Report) {
		record := []string{
			summary.AccountID,
			summary.Region,
			row.Category,
			strconv.Itoa(row.Count),
			row.Size,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportAuditSummaryToJSON(summary entity.AuditSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating audit JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return "", fmt.Errorf("error encoding audit JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportAuditSummaryToPDF(summary entity.AuditSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{192, 0, 0}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Storage Audit Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Account ID: %s   Region: %s", summary.AccountID, summary.Region)), "", 1, "L", true, 0, "")
	if summary.Bucket != "" {
		destination := fmt.Sprintf("  Destination: s3://%s/%s", summary.Bucket, summary.ObjectKey)
		if !summary.Published {
			destination += " (dry run, not written)"
		}
		pdf.CellFormat(0, 8, tr(destination), "", 1, "L", true, 0, "")
	}
	pdf.Ln(10)

	// Tabela de resultados
	widths := []float64{90, 50, 50}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	for i, h := range []string{"Category", "Count", "Size (GiB)"} {
		pdf.CellFormat(widths[i], 8, tr(h), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range summaryRows(summary.Report) {
		pdf.CellFormat(widths[0], 7, tr(row.Category), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.Itoa(row.Count), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.Size, "B", 1, "L", false, 0, "")
	}

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Storage Audit | %s", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing audit PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
