// Package attachments validates and ingests complaint evidence files.
package attachments

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/securevoice/securevoice-core/models"
)

// MaxFileSize is the per-file upload cap
const MaxFileSize = 10 << 20 // 10 MiB

var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
	"audio/mpeg":      true,
	"audio/wav":       true,
}

// Upload is a raw file handed to the ingestion pipeline
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Validate checks the upload against the size cap and the type allow-list
func Validate(u Upload) *models.IngestionError {
	if u.Size > MaxFileSize {
		return &models.IngestionError{Name: u.Name, Reason: "File size exceeds 10MB limit"}
	}
	if !allowedTypes[u.ContentType] {
		return &models.IngestionError{Name: u.Name, Reason: "File type not supported. Allowed: Images, PDF, Audio"}
	}
	return nil
}

// Process reads each upload into its transportable data-URL form. Files are
// read concurrently but the returned attachments preserve the input order of
// the uploads that passed. Invalid or unreadable files are reported
// individually and never abort the rest of the batch.
func Process(ctx context.Context, uploads []Upload) ([]models.Attachment, []*models.IngestionError) {
	accepted := make([]*models.Attachment, len(uploads))
	rejected := make([]*models.IngestionError, len(uploads))

	var wg sync.WaitGroup
	for i, u := range uploads {
		wg.Add(1)
		go func(i int, u Upload) {
			defer wg.Done()
			accepted[i], rejected[i] = ingest(ctx, u)
		}(i, u)
	}
	wg.Wait()

	var files []models.Attachment
	var errs []*models.IngestionError
	for i := range uploads {
		if rejected[i] != nil {
			zap.S().Warnw("attachment rejected", "name", rejected[i].Name, "reason", rejected[i].Reason)
			errs = append(errs, rejected[i])
			continue
		}
		files = append(files, *accepted[i])
	}
	return files, errs
}

func ingest(ctx context.Context, u Upload) (*models.Attachment, *models.IngestionError) {
	if err := Validate(u); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &models.IngestionError{Name: u.Name, Reason: fmt.Sprintf("upload canceled: %v", err)}
	}

	// read one byte past the cap so an undeclared oversize is still caught
	data, err := io.ReadAll(io.LimitReader(u.Content, MaxFileSize+1))
	if err != nil {
		return nil, &models.IngestionError{Name: u.Name, Reason: fmt.Sprintf("failed to read file: %v", err)}
	}
	if len(data) > MaxFileSize {
		return nil, &models.IngestionError{Name: u.Name, Reason: "File size exceeds 10MB limit"}
	}

	return &models.Attachment{
		Name:        u.Name,
		ContentType: u.ContentType,
		Size:        int64(len(data)),
		Data:        fmt.Sprintf("data:%s;base64,%s", u.ContentType, base64.StdEncoding.EncodeToString(data)),
		UploadedAt:  time.Now(),
	}, nil
}
