package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"Immob/config"
	"Immob/pkg/response"
	"Immob/pkg/snowflake"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"

	_ "golang.org/x/image/webp"
	_ "image/jpeg"
	_ "image/png"
)

const maxImageSize int64 = 10 << 20 // 10MB

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage validates the upload and stores it under the given key
	// prefix, returning the public object URL.
	UploadImage(ctx context.Context, prefix string, header *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, objectKey string) error
	SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error)
}

type OssService struct {
	Client     *oss.Client
	BucketName string
	PublicBase string
}

func NewOssService(cfg *config.OssConfig) IOssService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &OssService{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
		PublicBase: fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint),
	}
}

func (s *OssService) UploadImage(ctx context.Context, prefix string, header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", response.NewError(http.StatusBadRequest, "missing image file")
	}
	if header.Size <= 0 || header.Size > maxImageSize {
		return "", response.NewError(http.StatusBadRequest, "image must be between 1 byte and 10MB")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", response.NewError(http.StatusBadRequest, "uploaded file is not seekable")
	}

	// sniff the real content type, the client-sent one is not trusted
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return "", response.NewError(http.StatusBadRequest, fmt.Sprintf("unsupported image type: %s", contentType))
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	_, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return "", response.NewError(http.StatusBadRequest, "invalid image data")
	}
	format = strings.ToLower(format)
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	objectKey := fmt.Sprintf("%s/%s/%d%s",
		prefix,
		time.Now().Format("2006/01/02"),
		snowflake.GenID(),
		ext,
	)

	limited := io.LimitReader(seeker, maxImageSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return "", err
	}

	return s.PublicBase + "/" + objectKey, nil
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

func (s *OssService) SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error) {
	result, err := s.Client.Presign(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(time.Duration(expireSeconds)*time.Second))
	if err != nil {
		return "", err
	}
	return result.URL, nil
}
