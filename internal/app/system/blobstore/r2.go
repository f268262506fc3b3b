package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BackendR2 is the identifier R2.Backend reports.
const BackendR2 = "r2"

const defaultPresignExpiry = 15 * time.Minute

// R2Config describes an S3-compatible bucket. For Cloudflare R2 only
// AccountID, Bucket and the key pair are required.
type R2Config struct {
	Endpoint        string
	AccountID       string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	PathStyle       bool
	// PublicBaseURL is the public bucket hostname (r2.dev or a custom
	// domain). Empty means objects are never linked directly.
	PublicBaseURL string
}

// Configured reports whether the bucket and credentials are all present.
func (c R2Config) Configured() bool {
	return c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" &&
		(c.Endpoint != "" || c.AccountID != "")
}

// endpoint returns host[:port] and whether TLS should be used.
func (c R2Config) endpoint() (string, bool, error) {
	ep := strings.TrimSpace(c.Endpoint)
	if ep == "" {
		if c.AccountID == "" {
			return "", false, errors.New("blobstore: endpoint or account id is required")
		}
		return c.AccountID + ".r2.cloudflarestorage.com", true, nil
	}
	if !strings.Contains(ep, "://") {
		return strings.TrimRight(ep, "/"), true, nil
	}
	u, err := url.Parse(ep)
	if err != nil || u.Host == "" {
		return "", false, fmt.Errorf("blobstore: bad endpoint %q", c.Endpoint)
	}
	return u.Host, u.Scheme != "http", nil
}

// R2 is a storage.Store over an S3-compatible bucket, talking SigV4 through
// minio-go.
type R2 struct {
	cl         *minio.Client
	bucket     string
	publicBase string
}

var _ storage.Store = (*R2)(nil)

// NewR2 builds the client. It does not contact the bucket.
func NewR2(cfg R2Config) (*R2, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", storage.ErrInvalidConfig)
	}
	host, secure, err := cfg.endpoint()
	if err != nil {
		return nil, err
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: secure,
		Region: region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(host, opts)
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &R2{cl: cl, bucket: cfg.Bucket, publicBase: publicBase(cfg.PublicBaseURL)}, nil
}

// Backend returns the backend type identifier.
func (s *R2) Backend() string { return BackendR2 }

// Put uploads r under path. The size is taken from readers that report
// their remaining length; otherwise minio streams a multipart upload.
func (s *R2) Put(ctx context.Context, path string, r io.Reader, opts *storage.PutOptions) error {
	key, err := CleanKey(path)
	if err != nil {
		return err
	}
	if opts == nil {
		opts = &storage.PutOptions{}
	}
	if opts.IfNotExists {
		exists, err := s.Exists(ctx, key)
		if err != nil {
			return err
		}
		if exists {
			return storage.ErrAlreadyExists
		}
	}

	ct := opts.ContentType
	if ct == "" {
		ct = storage.DetectContentType(key, nil)
	}
	size := int64(-1)
	if lr, ok := r.(interface{ Len() int }); ok {
		size = int64(lr.Len())
	}
	_, err = s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:        ct,
		ContentDisposition: opts.ContentDisposition,
		ContentEncoding:    opts.ContentEncoding,
		CacheControl:       opts.CacheControl,
		StorageClass:       opts.StorageClass,
		UserMetadata:       opts.Metadata,
	})
	return translate(err)
}

// PutBytes uploads data under path.
func (s *R2) PutBytes(ctx context.Context, path string, data []byte, opts *storage.PutOptions) error {
	return s.Put(ctx, path, bytes.NewReader(data), opts)
}

// Get opens the object. minio fetches lazily, so the object is stat'ed
// first to surface a missing key here rather than on the first Read.
func (s *R2) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, _, err := s.GetWithInfo(ctx, path)
	return rc, err
}

// GetBytes reads the whole object.
func (s *R2) GetBytes(ctx context.Context, path string) ([]byte, error) {
	rc, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// GetWithInfo opens the object and returns its metadata.
func (s *R2) GetWithInfo(ctx context.Context, path string) (io.ReadCloser, *storage.ObjectInfo, error) {
	key, err := CleanKey(path)
	if err != nil {
		return nil, nil, err
	}
	obj, err := s.cl.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, translate(err)
	}
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, nil, translate(err)
	}
	return obj, objectInfo(st), nil
}

// Head returns metadata without downloading the object.
func (s *R2) Head(ctx context.Context, path string) (*storage.ObjectInfo, error) {
	key, err := CleanKey(path)
	if err != nil {
		return nil, err
	}
	st, err := s.cl.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, translate(err)
	}
	return objectInfo(st), nil
}

// Delete removes the object. Deleting a missing key is not an error.
func (s *R2) Delete(ctx context.Context, path string) error {
	key, err := CleanKey(path)
	if err != nil {
		return err
	}
	return translate(s.cl.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}))
}

// DeleteMany removes each path and reports how many were deleted before the
// first failure.
func (s *R2) DeleteMany(ctx context.Context, paths []string) (int, error) {
	n := 0
	for _, p := range paths {
		if err := s.Delete(ctx, p); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Exists reports whether an object is stored under path.
func (s *R2) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.Head(ctx, path)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// List returns objects under prefix. A "/" delimiter lists one level and
// reports sub-prefixes in CommonPrefixes. The continuation token is the last
// key of the previous page.
func (s *R2) List(ctx context.Context, prefix string, opts *storage.ListOptions) (*storage.ListResult, error) {
	if opts == nil {
		opts = &storage.ListOptions{}
	}
	max := opts.MaxKeys
	if max <= 0 {
		max = 1000
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	res := &storage.ListResult{}
	ch := s.cl.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:       strings.TrimPrefix(prefix, "/"),
		Recursive:    opts.Delimiter == "",
		StartAfter:   opts.ContinuationToken,
		WithMetadata: opts.IncludeMetadata,
	})
	last := ""
	for oi := range ch {
		if oi.Err != nil {
			return nil, translate(oi.Err)
		}
		if len(res.Objects)+len(res.CommonPrefixes) == max {
			res.IsTruncated = true
			res.NextContinuationToken = last
			break
		}
		last = oi.Key
		if strings.HasSuffix(oi.Key, "/") && opts.Delimiter != "" {
			res.CommonPrefixes = append(res.CommonPrefixes, oi.Key)
			continue
		}
		res.Objects = append(res.Objects, *objectInfo(oi))
	}
	return res, nil
}

// Copy duplicates src to dst inside the bucket.
func (s *R2) Copy(ctx context.Context, src, dst string) error {
	from, err := CleanKey(src)
	if err != nil {
		return err
	}
	to, err := CleanKey(dst)
	if err != nil {
		return err
	}
	_, err = s.cl.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: to},
		minio.CopySrcOptions{Bucket: s.bucket, Object: from},
	)
	return translate(err)
}

// Move copies src to dst and then deletes src.
func (s *R2) Move(ctx context.Context, src, dst string) error {
	if err := s.Copy(ctx, src, dst); err != nil {
		return err
	}
	return s.Delete(ctx, src)
}

// PresignedURL signs a time-limited GET for a private bucket.
func (s *R2) PresignedURL(ctx context.Context, path string, opts *storage.PresignOptions) (string, error) {
	key, err := CleanKey(path)
	if err != nil {
		return "", err
	}
	if opts == nil {
		opts = &storage.PresignOptions{}
	}
	expires := opts.Expires
	if expires <= 0 {
		expires = defaultPresignExpiry
	}
	params := url.Values{}
	if opts.ContentType != "" {
		params.Set("response-content-type", opts.ContentType)
	}
	if opts.ContentDisposition != "" {
		params.Set("response-content-disposition", opts.ContentDisposition)
	}
	if opts.ResponseCacheControl != "" {
		params.Set("response-cache-control", opts.ResponseCacheControl)
	}
	u, err := s.cl.PresignedGetObject(ctx, s.bucket, key, expires, params)
	if err != nil {
		return "", fmt.Errorf("blobstore: presign %s: %w", key, err)
	}
	return u.String(), nil
}

// PresignedUploadURL signs a time-limited PUT.
func (s *R2) PresignedUploadURL(ctx context.Context, path string, opts *storage.PresignUploadOptions) (*storage.PresignedUpload, error) {
	key, err := CleanKey(path)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &storage.PresignUploadOptions{}
	}
	expires := opts.Expires
	if expires <= 0 {
		expires = defaultPresignExpiry
	}
	u, err := s.cl.PresignedPutObject(ctx, s.bucket, key, expires)
	if err != nil {
		return nil, fmt.Errorf("blobstore: presign upload %s: %w", key, err)
	}
	headers := map[string]string{}
	if opts.ContentType != "" {
		headers["Content-Type"] = opts.ContentType
	}
	return &storage.PresignedUpload{
		URL:     u.String(),
		Method:  http.MethodPut,
		Headers: headers,
		Expires: time.Now().Add(expires),
	}, nil
}

// URL returns the public URL for path, or "" when the bucket has no public
// hostname.
func (s *R2) URL(path string) string {
	if s.publicBase == "" {
		return ""
	}
	key, err := CleanKey(path)
	if err != nil {
		return ""
	}
	return s.publicBase + (&url.URL{Path: "/" + key}).EscapedPath()
}

func objectInfo(oi minio.ObjectInfo) *storage.ObjectInfo {
	return &storage.ObjectInfo{
		Path:         oi.Key,
		Size:         oi.Size,
		ContentType:  oi.ContentType,
		LastModified: oi.LastModified,
		ETag:         quoteETag(oi.ETag),
		Metadata:     map[string]string(oi.UserMetadata),
		StorageClass: oi.StorageClass,
	}
}

func quoteETag(tag string) string {
	tag = strings.Trim(tag, `"`)
	if tag == "" {
		return ""
	}
	return `"` + tag + `"`
}

func publicBase(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	return raw
}

// translate maps minio errors onto the storage sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NotFound":
		return storage.ErrNotFound
	case "NoSuchBucket":
		return storage.ErrBucketNotFound
	case "AccessDenied":
		return storage.ErrPermissionDenied
	}
	if resp.StatusCode == http.StatusNotFound {
		return storage.ErrNotFound
	}
	return fmt.Errorf("blobstore: r2: %w", err)
}
