// Package s3store implements a binary data handler on an S3 bucket.
package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/iohandler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// API is the subset of the S3 client used by the handler.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Config selects the bucket and the client settings.
type Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	UsePathStyle bool
	KeyPrefix    string
	URLPrefix    string
}

// Binarydata is a domain.BinarydataHandler storing each file as one object.
type Binarydata struct {
	Client    API
	Bucket    string
	KeyPrefix string
	URLPrefix string
}

// Open builds a client from the default AWS credential chain.
func Open(ctx context.Context, conf Config) (*Binarydata, error) {
	if conf.Bucket == "" {
		return nil, domain.InvalidArgumentError{Argument: "bucket", Reason: "must not be empty"}
	}
	var opts []func(*config.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, config.WithRegion(conf.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: loading aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
		o.UsePathStyle = conf.UsePathStyle
	})
	return &Binarydata{
		Client:    client,
		Bucket:    conf.Bucket,
		KeyPrefix: conf.KeyPrefix,
		URLPrefix: conf.URLPrefix,
	}, nil
}

func (b *Binarydata) key(id string) string {
	if b.KeyPrefix == "" {
		return id
	}
	return strings.TrimRight(b.KeyPrefix, "/") + "/" + id
}

// Create uploads the file contents.
func (b *Binarydata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) error {
	id, err := iohandler.CleanID(file.ID)
	if err != nil {
		return err
	}
	if file.Input == nil {
		return domain.InvalidArgumentError{Argument: "input", Reason: "must not be nil"}
	}
	in := &s3.PutObjectInput{
		Bucket: aws.String(b.Bucket),
		Key:    aws.String(b.key(id)),
		Body:   file.Input,
	}
	if file.Size > 0 {
		in.ContentLength = aws.Int64(file.Size)
	}
	if file.MimeType != "" {
		in.ContentType = aws.String(file.MimeType)
	}
	_, err = b.Client.PutObject(ctx, in)
	return err
}

// Delete removes the object of the file.
func (b *Binarydata) Delete(ctx context.Context, id string) error {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return err
	}
	_, err = b.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.Bucket),
		Key:    aws.String(b.key(id)),
	})
	if err != nil {
		return notFound(id, err)
	}
	_, err = b.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.Bucket),
		Key:    aws.String(b.key(id)),
	})
	return err
}

// Contents reads the whole object.
func (b *Binarydata) Contents(ctx context.Context, id string) ([]byte, error) {
	r, err := b.Resource(ctx, id)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Resource opens the object for reading.
func (b *Binarydata) Resource(ctx context.Context, id string) (io.ReadCloser, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return nil, err
	}
	out, err := b.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.Bucket),
		Key:    aws.String(b.key(id)),
	})
	if err != nil {
		return nil, notFound(id, err)
	}
	return out.Body, nil
}

// URI returns the public URI of the file.
func (b *Binarydata) URI(id string) string {
	return iohandler.JoinURI(b.URLPrefix, id)
}

// IDFromURI returns the ID of the file published at uri.
func (b *Binarydata) IDFromURI(uri string) (string, error) {
	return iohandler.SplitURI(b.URLPrefix, uri)
}

// DeleteDirectory removes every object below the path.
func (b *Binarydata) DeleteDirectory(ctx context.Context, path string) error {
	prefix, err := iohandler.DirectoryPrefix(path)
	if err != nil {
		return err
	}
	if prefix == "" {
		return domain.InvalidArgumentError{Argument: "path", Reason: "refusing to delete the bucket root"}
	}
	pages := s3.NewListObjectsV2Paginator(b.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.Bucket),
		Prefix: aws.String(b.key(prefix)),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, obj := range page.Contents {
			_, err := b.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(b.Bucket),
				Key:    obj.Key,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func notFound(id string, err error) error {
	var noKey *types.NoSuchKey
	var missing *types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &missing) {
		return domain.BinaryFileNotFoundError{ID: id}
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return domain.BinaryFileNotFoundError{ID: id}
		}
	}
	return err
}

var _ domain.BinarydataHandler = &Binarydata{}
