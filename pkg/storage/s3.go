package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	imageutil "hazelview_backend/pkg/utils/image"
)

type Client struct {
	s3     *s3.Client
	bucket string
	region string
}

// New S3 istemcisini kurar. AccessKey boşsa SDK'nın varsayılan credential
// zinciri kullanılır.
func New(region, bucket, accessKey, secretKey string) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	return &Client{
		s3:     s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// UploadImage resmi optimize edip yükler ve public URL döner. Webp türevi
// arka planda üretilir; türev hatası yüklemeyi etkilemez.
func (c *Client) UploadImage(file *multipart.FileHeader) (string, error) {
	buf, img, contentType, err := imageutil.Process(file)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("properties/%s%s", uuid.NewString(), ext)

	_, err = c.s3.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to S3: %v", err)
	}

	// Türev best-effort: sonuç beklenmeden dönülür
	if ext != ".webp" {
		go c.uploadWebPDerivative(img, derivativeKey(key))
	}

	return c.publicURL(key), nil
}

func (c *Client) uploadWebPDerivative(img image.Image, key string) {
	buf, err := imageutil.EncodeWebP(img)
	if err != nil {
		log.Printf("Could not encode webp derivative for %s: %v", key, err)
		return
	}

	_, err = c.s3.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		log.Printf("Could not upload webp derivative %s: %v", key, err)
	}
}

// DeleteImage URL'i verilen objeyi ve varsa webp türevini S3'ten siler
func (c *Client) DeleteImage(imageURL string) error {
	parts := strings.Split(imageURL, "/")
	if len(parts) < 4 {
		return fmt.Errorf("unexpected image URL: %s", imageURL)
	}
	key := strings.Join(parts[3:], "/")

	_, err := c.s3.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}

	if dk := derivativeKey(key); dk != key {
		if _, err := c.s3.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(dk),
		}); err != nil {
			log.Printf("Could not delete webp derivative %s: %v", dk, err)
		}
	}
	return nil
}

func (c *Client) publicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

func derivativeKey(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + ".webp"
}
