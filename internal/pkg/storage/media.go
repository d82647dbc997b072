package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/ocl-logistics/ocl-backend/internal/pkg/env"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/s3backup"
)

const (
	// ThumbnailWidth is the pixel width of generated news thumbnails.
	ThumbnailWidth = 480

	newsSubdir = "news"
)

// MediaStore persists news images on local disk, generates thumbnail and
// WebP variants, and mirrors files to S3 when backup is enabled. The
// database only ever references the original file through its key; variants
// share the key's basename and are regenerated on demand.
type MediaStore struct {
	baseDir   string
	backup    *s3backup.Client
	backupCfg *s3backup.Config
}

var (
	mediaStore *MediaStore
	mediaOnce  sync.Once
)

// GetMediaStore returns the singleton media store instance
func GetMediaStore() *MediaStore {
	mediaOnce.Do(func() {
		mediaStore = newMediaStore()
	})
	return mediaStore
}

func newMediaStore() *MediaStore {
	s := &MediaStore{
		baseDir: env.GetEnv("UPLOAD_DIR", "uploads"),
	}

	cfg, err := s3backup.LoadConfig()
	if err != nil {
		log.Warnf("[MediaStore] invalid S3 backup config: %v", err)
		return s
	}
	if cfg.IsEnabled() {
		client, err := s3backup.NewClient(cfg)
		if err != nil {
			log.Warnf("[MediaStore] S3 backup unavailable: %v", err)
		} else {
			s.backup = client
			s.backupCfg = cfg
		}
	}

	return s
}

// SaveNewsImage stores the uploaded file under a generated key and returns
// that key. Variant generation and offsite backup are best-effort; only the
// original write can fail the call.
func (s *MediaStore) SaveNewsImage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := uuid.NewString() + ext

	dir := filepath.Join(s.baseDir, newsSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, key)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	if err := s.generateVariants(key); err != nil {
		log.Warnf("[MediaStore] variant generation failed for %s: %v", key, err)
	}

	if s.backup != nil {
		if err := s.backup.UploadFile(path, s.backupCfg.GetObjectKey(key)); err != nil {
			log.Warnf("[MediaStore] offsite backup failed for %s: %v", key, err)
		}
	}

	return key, nil
}

// generateVariants writes a resized thumbnail next to the original plus a
// WebP encoding of it. GIFs keep only the original to preserve animation;
// WebP uploads do too, since re-encoding would land on the original's path.
func (s *MediaStore) generateVariants(key string) error {
	if strings.HasSuffix(key, ".gif") || WebpKey(key) == key {
		return nil
	}

	path := s.Path(key)
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("error opening image: %w", err)
	}

	thumb := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, s.Path(ThumbKey(key))); err != nil {
		return fmt.Errorf("error saving thumbnail: %w", err)
	}

	output, err := os.Create(s.Path(WebpKey(key)))
	if err != nil {
		return fmt.Errorf("error creating WebP file: %w", err)
	}
	defer output.Close()

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, 85)
	if err != nil {
		return fmt.Errorf("error creating encoder options: %w", err)
	}
	if err := webp.Encode(output, thumb, options); err != nil {
		return fmt.Errorf("error encoding WebP image: %w", err)
	}

	return nil
}

// DeleteNewsImage removes the original file, its variants, and the offsite
// copy. Missing variants are not an error.
func (s *MediaStore) DeleteNewsImage(key string) error {
	if key == "" {
		return nil
	}

	for _, variant := range []string{ThumbKey(key), WebpKey(key)} {
		if variant == key {
			continue
		}
		if err := os.Remove(s.Path(variant)); err != nil && !os.IsNotExist(err) {
			log.Warnf("[MediaStore] failed to remove variant %s: %v", variant, err)
		}
	}

	if s.backup != nil {
		if err := s.backup.DeleteFile(s.backupCfg.GetObjectKey(key)); err != nil {
			log.Warnf("[MediaStore] offsite delete failed for %s: %v", key, err)
		}
	}

	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}

// Path returns the on-disk location for a media key.
func (s *MediaStore) Path(key string) string {
	return filepath.Join(s.baseDir, newsSubdir, key)
}

// PublicURL returns the URL path under which a media key is served.
func PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return "/uploads/news/" + key
}

// ThumbKey derives the thumbnail filename for a media key.
func ThumbKey(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb" + ext
}

// WebpKey derives the WebP variant filename for a media key.
func WebpKey(key string) string {
	return strings.TrimSuffix(key, filepath.Ext(key)) + ".webp"
}
