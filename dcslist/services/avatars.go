package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AvatarService stores server avatars in an S3-compatible Spaces bucket.
// Only the storage side lives here; upload forms are the frontend's
// problem.
type AvatarService struct {
	client *s3.Client
	bucket string
	region string
	root   string
}

func NewAvatarService(key, secret, region, bucket, root string) (*AvatarService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load spaces config: %w", err)
	}

	return &AvatarService{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		root:   strings.Trim(root, "/"),
	}, nil
}

func (s *AvatarService) key(serverID string) string {
	if s.root == "" {
		return fmt.Sprintf("avatars/%s.png", serverID)
	}
	return fmt.Sprintf("%s/avatars/%s.png", s.root, serverID)
}

// PublicURL returns the CDN address of a server's stored avatar.
func (s *AvatarService) PublicURL(serverID string) string {
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s", s.bucket, s.region, s.key(serverID))
}

// Upload stores avatar bytes for a server and returns the public URL.
func (s *AvatarService) Upload(ctx context.Context, serverID string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/png"
	}

	key := s.key(serverID)
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		ACL:         "public-read",
	}); err != nil {
		return "", fmt.Errorf("failed to upload avatar for %s: %w", serverID, err)
	}

	return s.PublicURL(serverID), nil
}

// Delete removes a server's stored avatar. Missing objects are not an
// error; deletion is part of listing cleanup.
func (s *AvatarService) Delete(ctx context.Context, serverID string) error {
	key := s.key(serverID)
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}); err != nil {
		return fmt.Errorf("failed to delete avatar for %s: %w", serverID, err)
	}
	return nil
}
