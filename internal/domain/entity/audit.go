package entity

import "time"

// ReportObjectKey é a chave fixa do objeto de métricas no bucket de destino.
const ReportObjectKey = "metrics_output.json"

// VolumeTally acumula a quantidade e o tamanho somado (GiB) de volumes.
type VolumeTally struct {
	Count int   `json:"count"`
	Size  int64 `json:"size"`
}

// SnapshotTally acumula a quantidade de snapshots.
type SnapshotTally struct {
	Count int `json:"count"`
}

// AuditReport is the document persisted to the bucket and returned to the caller.
// Unattached and non-encrypted volumes overlap: a volume can be counted in both.
type AuditReport struct {
	UnattachedVolumes     VolumeTally   `json:"unattached_volumes"`
	NonEncryptedVolumes   VolumeTally   `json:"non_encrypted_volumes"`
	NonEncryptedSnapshots SnapshotTally `json:"non_encrypted_snapshots"`
}

// AddVolume classifica um volume nos contadores correspondentes.
func (r *AuditReport) AddVolume(v Volume) {
	if v.IsUnattached() {
		r.UnattachedVolumes.Count++
		r.UnattachedVolumes.Size += v.Size
	}

	if !v.Encrypted {
		r.NonEncryptedVolumes.Count++
		r.NonEncryptedVolumes.Size += v.Size
	}
}

// AddSnapshot classifica um snapshot nos contadores correspondentes.
func (r *AuditReport) AddSnapshot(s Snapshot) {
	if !s.Encrypted {
		r.NonEncryptedSnapshots.Count++
	}
}

// NewAuditReport builds a report from a full inventory read.
func NewAuditReport(volumes []Volume, snapshots []Snapshot) AuditReport {
	var report AuditReport
	for _, v := range volumes {
		report.AddVolume(v)
	}
	for _, s := range snapshots {
		report.AddSnapshot(s)
	}
	return report
}

// AuditSummary agrega o relatório com metadados da execução, usado apenas nos exports locais.
type AuditSummary struct {
	Profile     string      `json:"profile,omitempty"`
	AccountID   string      `json:"account_id"`
	Region      string      `json:"region"`
	Bucket      string      `json:"bucket,omitempty"`
	ObjectKey   string      `json:"object_key,omitempty"`
	GeneratedAt time.Time   `json:"generated_at"`
	Published   bool        `json:"published"`
	Report      AuditReport `json:"report"`
}
