package libs

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

const avatarFolder = "aliccedress/avatars"

type CloudinaryUploader struct {
	cld     *cloudinary.Cloudinary
	maxSize int64
}

// NewCloudinaryUploader prefers CLOUDINARY_URL and falls back to the
// separate cloud name / key / secret values.
func NewCloudinaryUploader(cloudinaryURL, cloudName, apiKey, apiSecret string, maxSize int64) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cloudinaryURL)
	} else {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, maxSize: maxSize}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if err := ValidateImage(header, u.maxSize); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(strings.ReplaceAll(header.Filename, " ", "_"), filepath.Ext(header.Filename))
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), name)

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         avatarFolder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}

	log.Info().Str("public_id", resp.PublicID).Msg("avatar uploaded to cloudinary")
	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", fmt.Errorf("cloudinary returned no url for %s", resp.PublicID)
}

// Delete destroys the asset behind url. The public id is the last path
// segment without extension inside the avatar folder.
func (u *CloudinaryUploader) Delete(ctx context.Context, url string) error {
	publicID := avatarPublicID(url)
	if publicID == "" {
		return fmt.Errorf("not a cloudinary avatar: %s", url)
	}
	if _, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("destroy cloudinary asset: %w", err)
	}
	return nil
}

func avatarPublicID(url string) string {
	if !strings.Contains(url, "/"+avatarFolder+"/") {
		return ""
	}
	base := path.Base(url)
	return avatarFolder + "/" + strings.TrimSuffix(base, path.Ext(base))
}
