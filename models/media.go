package models

import "gorm.io/gorm"

// MediaFile records one uploaded object; the bytes live in the object store
// under ObjectKey.
type MediaFile struct {
	gorm.Model
	FileName    string `gorm:"size:300;not null" json:"file_name"`
	ObjectKey   string `gorm:"size:400;not null;unique" json:"object_key"`
	ContentType string `gorm:"size:100" json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `gorm:"size:600" json:"url"`
	UploaderID  uint   `json:"uploader_id"`
}
