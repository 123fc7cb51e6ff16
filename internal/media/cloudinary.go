package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// cloudinaryStore stores assets in Cloudinary and returns the secure delivery URL.
type cloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
	log    *zap.Logger
}

func newCloudinaryStore(conf Config, log *zap.Logger) (*cloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(conf.CloudName, conf.APIKey, conf.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &cloudinaryStore{
		client: client,
		folder: conf.Folder,
		log:    log,
	}, nil
}

func (s *cloudinaryStore) Upload(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	res, err := s.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: publicID(suggestedName, time.Now()),
		Format:   "png",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, res.Error.Message)
	}

	s.log.Debug("asset uploaded",
		zap.String("public_id", res.PublicID),
		zap.String("url", res.SecureURL),
		zap.Int("bytes", res.Bytes),
	)

	return res.SecureURL, nil
}

// publicID derives a unique asset id from the uploaded file name,
// e.g. "tee-shirt.jpg" -> "tee-shirt-1714034400000".
func publicID(suggestedName string, now time.Time) string {
	base, _, _ := strings.Cut(suggestedName, ".")
	if base == "" {
		base = "asset"
	}
	return fmt.Sprintf("%s-%d", base, now.UnixMilli())
}
