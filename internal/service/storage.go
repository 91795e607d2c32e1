package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devraj/portfolio-v2/backend/config"
)

// DefaultProfileImagePath is returned when no profile image has been uploaded.
const DefaultProfileImagePath = "/uploads/profile.svg"

const profileImagePrefix = "profile-"

// ProjectImageStore stores a project image and returns its public URL.
type ProjectImageStore interface {
	StoreProjectImage(ctx context.Context, data []byte, contentType string) (string, error)
}

// PlaceholderImageURL is the fallback project image when the hosted store is
// unavailable or fails.
func PlaceholderImageURL(title string) string {
	return "https://via.placeholder.com/400x300/3B82F6/FFFFFF?text=" + url.QueryEscape(title)
}

// S3ImageStore uploads project images to the configured S3 bucket.
type S3ImageStore struct {
	s3Config *config.S3Config
}

func NewS3ImageStore(s3Config *config.S3Config) *S3ImageStore {
	return &S3ImageStore{s3Config: s3Config}
}

func (s *S3ImageStore) StoreProjectImage(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("project-images/%s%s", uuid.New().String(), extForContentType(contentType))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := s.s3Config.ObjectURL(key)
	logrus.WithField("url", publicURL).Info("Uploaded project image to S3")
	return publicURL, nil
}

func extForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ".jpg"
	}
}

// LocalImageStore keeps uploaded files on local disk under the uploads dir,
// which is also served statically at /uploads.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Dir returns the directory served at /uploads.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// SaveProfileImage writes the image under a unique timestamp-prefixed name so
// the lexicographically greatest profile-* file is the most recent upload.
func (s *LocalImageStore) SaveProfileImage(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".png"
	}
	name := fmt.Sprintf("%s%d-%s%s", profileImagePrefix, time.Now().UnixMilli(), uuid.New().String()[:8], ext)

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing profile image: %w", err)
	}

	return "/uploads/" + name, nil
}

// SaveProjectImage stores a project image locally. Used when no S3 bucket is
// configured.
func (s *LocalImageStore) SaveProjectImage(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".png"
	}
	name := fmt.Sprintf("project-%s%s", uuid.New().String(), ext)

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing project image: %w", err)
	}

	return "/uploads/" + name, nil
}

// LatestProfileImage returns the URL of the most recently uploaded profile
// image, or the default placeholder path when none exists. A concurrent upload
// may briefly be invisible to a reader; that race is accepted.
func (s *LocalImageStore) LatestProfileImage() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("reading upload dir: %w", err)
	}

	latest := ""
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, profileImagePrefix) {
			continue
		}
		if name > latest {
			latest = name
		}
	}

	if latest == "" {
		return DefaultProfileImagePath, nil
	}
	return "/uploads/" + latest, nil
}
