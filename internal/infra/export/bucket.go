// Package export writes dataset tables and their manifest to a blob bucket.
package export

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// OpenBucket opens the export destination. A plain path is a local directory
// which must already exist unless createDir is set; anything with a scheme is
// handed to blob.OpenBucket.
func OpenBucket(ctx context.Context, output string, createDir bool) (*blob.Bucket, error) {
	if strings.Contains(output, "://") {
		bucket, err := blob.OpenBucket(ctx, output)
		if err != nil {
			return nil, errors.Wrapf(err, "open bucket %s", output)
		}

		return bucket, nil
	}

	dir, err := filepath.Abs(output)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve output %s", output)
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: createDir,
		NoTempDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open output directory %s", dir)
	}

	return bucket, nil
}
