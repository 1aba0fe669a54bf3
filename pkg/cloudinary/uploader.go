package cloudinary

import (
	"bytes"
	"context"
	"errors"

	"github.com/GlobalPath/cms_service/internal/interfaces"
	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) UploadBytes(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (interfaces.UploadResult, error) {

	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:       folder,
			PublicID:     filename,
			ResourceType: "auto",
		},
	)
	if err != nil {
		return interfaces.UploadResult{}, err
	}

	return interfaces.UploadResult{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
	}, nil
}

// Delete removes a stored object. Used both for media deletion and as the
// compensating step when a metadata insert fails after a successful upload.
func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	res, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return err
	}
	if res.Result != "ok" && res.Result != "not found" {
		return errors.New("destroy failed: " + res.Result)
	}
	return nil
}
