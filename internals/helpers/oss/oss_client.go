// file: internals/helpers/oss/oss_client.go
package helperOSS

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Attachment uploads are capped well below the server body limit.
const MaxUploadSize = int64(8 * 1024 * 1024)

var (
	client *oss.Client
	bucket *oss.Bucket

	ErrNotConfigured = errors.New("object storage not configured")
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// InitClient wires the bucket from OSS_ENDPOINT / OSS_ACCESS_KEY_ID /
// OSS_ACCESS_KEY_SECRET / OSS_BUCKET. Missing config is not fatal; upload
// endpoints report it per request.
func InitClient() error {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return ErrNotConfigured
	}
	c, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return err
	}
	b, err := c.Bucket(bucketName)
	if err != nil {
		return err
	}
	client = c
	bucket = b
	return nil
}

func ready() error {
	if bucket == nil {
		return ErrNotConfigured
	}
	return nil
}

// ObjectKey builds a collision-free key: <prefix>/<yyyy/mm>/<rand>-<name>.
func ObjectKey(prefix, filename string) string {
	base := strings.ToLower(path.Base(filename))
	base = strings.ReplaceAll(base, " ", "-")
	now := time.Now().UTC()
	return fmt.Sprintf("%s/%04d/%02d/%s-%s", strings.Trim(prefix, "/"), now.Year(), now.Month(), randomHex(8), base)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// UploadBytes stores a blob and returns its public URL.
func UploadBytes(key string, data []byte, contentType string) (string, error) {
	if err := ready(); err != nil {
		return "", err
	}
	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return PublicURL(key), nil
}

// UploadMultipart streams one multipart file into the bucket.
func UploadMultipart(fh *multipart.FileHeader, key string) (string, error) {
	if err := ready(); err != nil {
		return "", err
	}
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large: %d bytes", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > MaxUploadSize {
		return "", fmt.Errorf("file too large")
	}
	ct := fh.Header.Get("Content-Type")
	return UploadBytes(key, data, ct)
}

// FetchObject reads an object back (attachment download passthrough).
func FetchObject(key string) ([]byte, error) {
	if err := ready(); err != nil {
		return nil, err
	}
	rc, err := bucket.GetObject(key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// DeleteObject removes an object; missing keys are not an error.
func DeleteObject(key string) error {
	if err := ready(); err != nil {
		return err
	}
	return bucket.DeleteObject(key)
}

// PublicURL renders the canonical https URL for a key.
func PublicURL(key string) string {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(getEnv("OSS_ENDPOINT"), "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", getEnv("OSS_BUCKET"), endpoint, strings.TrimPrefix(key, "/"))
}

// KeyFromURL is the inverse of PublicURL; empty when the URL is foreign.
func KeyFromURL(u string) string {
	prefix := fmt.Sprintf("https://%s.%s/", getEnv("OSS_BUCKET"),
		strings.TrimPrefix(strings.TrimPrefix(getEnv("OSS_ENDPOINT"), "https://"), "http://"))
	if strings.HasPrefix(u, prefix) {
		return strings.TrimPrefix(u, prefix)
	}
	return ""
}
