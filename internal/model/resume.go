package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Resume is one uploaded résumé file. At most one record is active at a time;
// the storage path never leaves the server (excluded from JSON).
type Resume struct {
	ID            string     `db:"id" json:"id"`
	Filename      string     `db:"filename" json:"filename"`
	OriginalName  string     `db:"original_name" json:"originalName"`
	MimeType      string     `db:"mime_type" json:"mimetype"`
	Size          int64      `db:"size" json:"size"`
	StoragePath   string     `db:"storage_path" json:"-"`
	IsActive      bool       `db:"is_active" json:"isActive"`
	DownloadCount int        `db:"download_count" json:"downloadCount"`
	Version       string     `db:"version" json:"version"`
	Description   string     `db:"description" json:"description"`
	Tags          StringList `db:"tags" json:"tags"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

type StringList []string

func (l StringList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *StringList) Scan(src any) error          { return scanJSON(src, l) }
