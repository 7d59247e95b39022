package domain

// FileReference Model, a registered blob path and its content hash
type FileReference struct {
	Path string `gorm:"primaryKey;size:512" json:"path"` // Blob path
	Hash string `gorm:"size:128;not null" json:"hash"`   // Content digest
}
