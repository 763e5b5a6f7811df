// File: pkg/storage/aws/objects.go
package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"s3lync/pkg/storage"
)

// S3 rejects DeleteObjects batches above this size.
const deleteBatchSize = 1000

func (s *S3Store) Head(ctx context.Context, bucket, key string) (storage.ObjectMeta, error) {
	resp, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return storage.ObjectMeta{}, fmt.Errorf("%w: %s/%s", storage.ErrNotFound, bucket, key)
		}
		return storage.ObjectMeta{}, fmt.Errorf("failed to head %s/%s: %w", bucket, key, err)
	}

	return storage.ObjectMeta{
		Key:          key,
		Size:         aws.ToInt64(resp.ContentLength),
		ETag:         trimETag(aws.ToString(resp.ETag)),
		LastModified: aws.ToTime(resp.LastModified),
	}, nil
}

func (s *S3Store) List(ctx context.Context, bucket, prefix, delimiter string, fn func(storage.ListPage) error) error {
	input := &s3.ListObjectsV2Input{
		Bucket: &bucket,
		Prefix: &prefix,
	}
	if delimiter != "" {
		input.Delimiter = &delimiter
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		resp, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list %s/%s: %w", bucket, prefix, err)
		}

		page := storage.ListPage{}
		for _, obj := range resp.Contents {
			page.Objects = append(page.Objects, storage.ObjectMeta{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				ETag:         trimETag(aws.ToString(obj.ETag)),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
		for _, cp := range resp.CommonPrefixes {
			page.CommonPrefixes = append(page.CommonPrefixes, aws.ToString(cp.Prefix))
		}

		if err := fn(page); err != nil {
			return err
		}
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, bucket, key, destPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	s.logger.Debug("starting S3 GetObject", "bucket", bucket, "key", key, "dest", destPath)

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to download %s/%s: %w", bucket, key, err)
	}
	defer resp.Body.Close()

	file, err := os.Create(destPath)
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	_, copyErr := io.Copy(storage.ObserveWriter(file, obs), resp.Body)
	closeErr := file.Close()
	if copyErr != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to download %s/%s: %w", bucket, key, copyErr)
	}
	if closeErr != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to write %s: %w", destPath, closeErr)
	}

	return storage.ObjectMeta{
		Key:          key,
		Size:         aws.ToInt64(resp.ContentLength),
		ETag:         trimETag(aws.ToString(resp.ETag)),
		LastModified: aws.ToTime(resp.LastModified),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, bucket, key, srcPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	s.logger.Debug("starting S3 PutObject", "bucket", bucket, "key", key, "src", srcPath)

	file, err := os.Open(srcPath)
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to stat %s: %w", srcPath, err)
	}

	resp, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &bucket,
		Key:           &key,
		Body:          storage.ObserveReader(file, obs),
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}

	return storage.ObjectMeta{
		Key:  key,
		Size: info.Size(),
		ETag: trimETag(aws.ToString(resp.ETag)),
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *S3Store) DeleteMany(ctx context.Context, bucket string, keys []string) error {
	for start := 0; start < len(keys); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(keys))

		identifiers := make([]types.ObjectIdentifier, 0, end-start)
		for _, key := range keys[start:end] {
			identifiers = append(identifiers, types.ObjectIdentifier{Key: aws.String(key)})
		}

		_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: &bucket,
			Delete: &types.Delete{Objects: identifiers},
		})
		if err != nil {
			return fmt.Errorf("failed to delete %d objects from %s: %w", end-start, bucket, err)
		}
	}
	return nil
}

func trimETag(etag string) string {
	return strings.ReplaceAll(etag, "\"", "")
}
