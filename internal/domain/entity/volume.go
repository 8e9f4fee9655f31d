package entity

// VolumeStateAvailable é o estado de um volume EBS que não está anexado a nenhuma instância.
const VolumeStateAvailable = "available"

// Volume represents an EBS volume as read from the inventory.
type Volume struct {
	ID        string `json:"id"`
	State     string `json:"state"`
	Encrypted bool   `json:"encrypted"`
	Size      int64  `json:"size"` // GiB
}

// IsUnattached reports whether the volume is not attached to any instance.
func (v Volume) IsUnattached() bool {
	return v.State == VolumeStateAvailable
}
