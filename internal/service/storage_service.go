package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"awareness_backend/internal/config"
	"awareness_backend/internal/util"
	"awareness_backend/pkg/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 读取题库、解析库与模型文件
type StorageProvider interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Location(name string) string
}

// LocalStorageProvider 本地存储实现，相对路径基于 LocalPath
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) path(name string) string {
	if filepath.IsAbs(name) || p.Config.LocalPath == "" {
		return name
	}
	return filepath.Join(p.Config.LocalPath, name)
}

func (p *LocalStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(p.path(name))
}

func (p *LocalStorageProvider) Location(name string) string {
	return p.path(name)
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, objectKey(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject 是惰性的，Stat 才会暴露对象不存在等错误
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

func (p *MinioStorageProvider) Location(name string) string {
	return "minio://" + p.Config.MinioBucket + "/" + objectKey(name)
}

// OSSStorageProvider 阿里云OSS存储实现
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return nil, err
	}
	return bucket.GetObject(objectKey(name), oss.WithContext(ctx))
}

func (p *OSSStorageProvider) Location(name string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.Config.OSSBucket, p.Config.OSSEndpoint, objectKey(name))
}

func objectKey(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), "/")
}

// StorageService 模型与数据文件的读取入口，实现 pipeline.Opener
type StorageService struct {
	Provider StorageProvider
}

// NewStorageService 对象存储初始化失败时退回本地目录
func NewStorageService(cfg *config.StorageConfig) *StorageService {
	var provider StorageProvider
	switch cfg.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(cfg)
		if err != nil {
			logger.Log.Warn("MinIO unavailable, falling back to local storage", zap.Error(err))
		} else {
			provider = p
		}
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(cfg)
		if err != nil {
			logger.Log.Warn("OSS unavailable, falling back to local storage", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: cfg}
	}

	return &StorageService{Provider: provider}
}

func (s *StorageService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.Provider.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Provider.Location(name), err)
	}
	return rc, nil
}
