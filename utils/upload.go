package utils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const uploadTimeout = 5 * time.Minute

// Media is a struct that contains media storage related operations
type Media struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Upload is a function that is used to upload a local temp file to the media
// bucket, the temp file is removed on both the success and the failure path
func (m *Media) Upload(localPath, folder, contentType string) (url string, err error) {
	defer os.Remove(localPath)

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(localPath))

	_, err = m.Conn.M.FPutObject(ctx, m.Env.MinioMediaBucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s/%s/%s", m.Env.MinioEndpoint, m.Env.MinioMediaBucket, objectName), nil
}
