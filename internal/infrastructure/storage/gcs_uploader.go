// Package storage implementa la subida de imágenes de producto a Google
// Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/agrocampo/agroadmin-api/internal/application/usecase"
	"github.com/agrocampo/agroadmin-api/pkg/config"
)

var _ usecase.ImageStorage = (*GCSUploader)(nil)

// tipos de contenido aceptados para imágenes de producto
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// GCSUploader sube objetos a un bucket GCS y arma su URL pública.
type GCSUploader struct {
	client        *gcs.Client
	bucket        string
	publicBaseURL string
}

// NewGCSUploader construye el uploader. Sin CredentialsFile usa
// Application Default Credentials (service account en Cloud Run).
func NewGCSUploader(ctx context.Context, cfg config.StorageConfig) (*GCSUploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket no configurado")
	}
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: crear cliente GCS: %w", err)
	}
	base := cfg.PublicBaseURL
	if base == "" {
		base = "https://storage.googleapis.com/" + cfg.Bucket
	}
	return &GCSUploader{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// Upload sube el blob y devuelve su URL pública.
func (u *GCSUploader) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if !allowedContentTypes[contentType] {
		return "", fmt.Errorf("storage: tipo de contenido no soportado: %s", contentType)
	}
	wc := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("storage: escribir objeto: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("storage: cerrar writer: %w", err)
	}
	return u.publicBaseURL + "/" + name, nil
}

// Close libera el cliente GCS.
func (u *GCSUploader) Close() error {
	return u.client.Close()
}
