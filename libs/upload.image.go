package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrImageTooLarge   = errors.New("file size exceeds maximum allowed size")
	ErrImageWrongType  = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	ErrImageNotPresent = errors.New("image file required")
)

// AvatarUploader stores an uploaded avatar and returns the URL to save in
// the profile.
type AvatarUploader interface {
	Upload(ctx context.Context, header *multipart.FileHeader) (string, error)
	// Delete removes an avatar previously returned by Upload.
	Delete(ctx context.Context, url string) error
}

func ValidateImage(header *multipart.FileHeader, maxSize int64) error {
	if header == nil {
		return ErrImageNotPresent
	}
	if maxSize > 0 && header.Size > maxSize {
		return ErrImageTooLarge
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return ErrImageWrongType
	}
	return nil
}

// LocalUploader writes avatars under Dir/avatars and serves them from
// URLPrefix (the router mounts Dir at /uploads).
type LocalUploader struct {
	Dir       string
	URLPrefix string
	MaxSize   int64
}

func (u *LocalUploader) Upload(_ context.Context, header *multipart.FileHeader) (string, error) {
	if err := ValidateImage(header, u.MaxSize); err != nil {
		return "", err
	}

	folder := filepath.Join(u.Dir, "avatars")
	if err := os.MkdirAll(folder, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	target := filepath.Join(folder, filename)
	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return "", fmt.Errorf("save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("close file: %w", err)
	}

	return path.Join(u.URLPrefix, "avatars", filename), nil
}

func (u *LocalUploader) Delete(_ context.Context, url string) error {
	prefix := path.Join(u.URLPrefix, "avatars") + "/"
	if !strings.HasPrefix(url, prefix) {
		return fmt.Errorf("not a local avatar: %s", url)
	}
	err := os.Remove(filepath.Join(u.Dir, "avatars", path.Base(url)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove avatar: %w", err)
	}
	return nil
}
