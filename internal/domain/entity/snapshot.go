package entity

// Snapshot represents an EBS snapshot owned by the caller.
type Snapshot struct {
	ID        string `json:"id"`
	VolumeID  string `json:"volume_id,omitempty"`
	Encrypted bool   `json:"encrypted"`
}
