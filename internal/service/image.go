package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/msomdec/youth-portal/internal/domain"
)

const (
	maxImageSize       = 5 * 1024 * 1024 // 5MB
	profileImagePrefix = "profile-images/"
)

// ImageService stores profile pictures through a FileStore.
type ImageService struct {
	files domain.FileStore
}

// NewImageService creates a new ImageService.
func NewImageService(files domain.FileStore) *ImageService {
	return &ImageService{files: files}
}

// Upload validates and stores data and returns its storage key. A previous
// image under oldKey is removed best-effort.
func (s *ImageService) Upload(ctx context.Context, oldKey, contentType string, data []byte) (string, error) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", fmt.Errorf("%w: only JPEG and PNG images are accepted", domain.ErrInvalidInput)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image is empty", domain.ErrInvalidInput)
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("%w: image exceeds 5MB limit", domain.ErrInvalidInput)
	}

	key, err := generateStorageKey()
	if err != nil {
		return "", fmt.Errorf("generate storage key: %w", err)
	}
	if err := s.files.Save(ctx, key, data); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}

	if IsProfileImageKey(oldKey) {
		if err := s.files.Delete(ctx, oldKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
			slog.Error("delete old profile image", "key", oldKey, "error", err)
		}
	}
	return key, nil
}

// Get returns the stored bytes for key.
func (s *ImageService) Get(ctx context.Context, key string) ([]byte, error) {
	if !IsProfileImageKey(key) {
		return nil, domain.ErrNotFound
	}
	data, err := s.files.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return data, nil
}

// IsProfileImageKey reports whether key was issued by Upload.
func IsProfileImageKey(key string) bool {
	return strings.HasPrefix(key, profileImagePrefix) && len(key) > len(profileImagePrefix)
}

func generateStorageKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return profileImagePrefix + hex.EncodeToString(b), nil
}
