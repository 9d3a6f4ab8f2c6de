package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	uriScheme = "s3://"
	fileExt   = ".csv"
)

// S3API is the part of the S3 client the import source needs.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ImportSource reads the CSV tree of an import from an S3 prefix laid out
// as <prefix>/<entity>/<duns>.csv.
type ImportSource struct {
	client S3API
	bucket string
	prefix string
}

func IsS3URI(location string) bool {
	return strings.HasPrefix(location, uriScheme)
}

// ParseURI splits s3://bucket/some/prefix into its bucket and prefix. The
// prefix comes back without surrounding slashes and may be empty.
func ParseURI(uri string) (bucket, prefix string, err error) {
	if !IsS3URI(uri) {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}

	rest := strings.TrimPrefix(uri, uriScheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", errors.New("s3 bucket required")
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

func NewImportSource(ctx context.Context, uri, region string) (*ImportSource, error) {
	bucket, prefix, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return NewImportSourceWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func NewImportSourceWithClient(client S3API, bucket, prefix string) *ImportSource {
	return &ImportSource{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *ImportSource) String() string {
	return uriScheme + path.Join(s.bucket, s.prefix)
}

// Check lists at most one key under the prefix. An empty prefix is
// readable; a missing bucket or denied access is not.
func (s *ImportSource) Check(ctx context.Context) error {
	_, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(s.dirPrefix("")),
		MaxKeys: aws.Int32(1),
	})
	return err
}

func (s *ImportSource) List(ctx context.Context, dir string) ([]string, error) {
	dirPrefix := s.dirPrefix(dir)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(dirPrefix),
	})

	var stems []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), dirPrefix)
			if strings.Contains(name, "/") || path.Ext(name) != fileExt {
				continue
			}
			stems = append(stems, strings.TrimSuffix(name, fileExt))
		}
	}

	sort.Strings(stems)
	return stems, nil
}

func (s *ImportSource) Open(ctx context.Context, dir, stem string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.dirPrefix(dir) + stem + fileExt),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

// dirPrefix is the key prefix of dir, ending in a slash unless it is the
// bucket root.
func (s *ImportSource) dirPrefix(dir string) string {
	p := path.Join(s.prefix, dir)
	if p == "" {
		return ""
	}
	return p + "/"
}
