package inscribe

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type FileStatus string

const (
	Uploading FileStatus = "uploading"
	Uploaded  FileStatus = "completed"
)

type File struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Size     string     `json:"size"`
	Type     string     `json:"type"`
	Progress float64    `json:"progress"`
	Status   FileStatus `json:"status"`
}

type Inscription struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Size          string    `json:"size"`
	InscriptionID string    `json:"inscription_id"`
	TxHash        string    `json:"tx_hash,omitempty"`
	CreatedAt     time.Time `json:"timestamp"`
}

// FileType buckets a file name by extension into the labels the upload list shows.
func FileType(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "pdf":
		return "PDF"
	case "aac", "mp3", "wav":
		return "AAC"
	case "jpg", "jpeg", "png":
		return "IMG"
	case "mp4", "avi", "mov":
		return "VID"
	case "txt", "doc", "docx":
		return "TXT"
	default:
		return "FILE"
	}
}

// FormatSize renders bytes as "0 Bytes", "512 Bytes", "1.5 KB", "2.25 MB"...
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}

// SeedRecent is the inscription history a fresh session shows.
func SeedRecent(now time.Time) []Inscription {
	return []Inscription{
		{ID: "1", Name: "tb1p...e3yz", Type: "json", Size: "1.23 Mb", InscriptionID: "i2b4f8a9c1d2e3f4", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "2", Name: "tb1q...vrny", Type: "text", Size: "0.45 Kb", InscriptionID: "i7e9f2b1c4d8a5b2", CreatedAt: now.Add(-time.Hour)},
		{ID: "3", Name: "mqd...hb2f", Type: "image", Size: "2.1 Mb", InscriptionID: "i3c5d6e7f8a9b1c2", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "4", Name: "2N7x...zWCs", Type: "video", Size: "15.7 Mb", InscriptionID: "i9f1a2b3c4d5e6f7", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "5", Name: "tb1p...e3yz", Type: "audio", Size: "4.2 Mb", InscriptionID: "i8e7d6c5b4a3f2e1", CreatedAt: now.Add(-12 * time.Hour)},
	}
}
