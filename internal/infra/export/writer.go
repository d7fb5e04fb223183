package export

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"hash"
	"io"
	"log/slog"
	"path"

	"rentgen/config"
	"rentgen/internal/domain/entity"
	"rentgen/internal/domain/service"
	"rentgen/internal/infra/compress"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// rows between context checks while streaming a table
const cancelCheckInterval = 1 << 16

// tableWriter implements service.DatasetWriter on a blob bucket.
type tableWriter struct {
	bucket      *blob.Bucket
	compression string
	logger      *slog.Logger
}

// WriterParams holds dependencies for the DatasetWriter, injected by Fx
type WriterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDatasetWriter opens the configured output and closes it when the app stops.
func NewDatasetWriter(params WriterParams) (service.DatasetWriter, error) {
	cfg := params.Config.Export

	bucket, err := OpenBucket(params.Ctx, cfg.Output, cfg.CreateDir)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Export destination opened",
		slog.String("output", cfg.Output),
		slog.String("compression", cfg.Compression),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewTableWriter(bucket, cfg.Compression, params.Logger), nil
}

// NewTableWriter writes into an already open bucket. The caller owns the bucket.
func NewTableWriter(bucket *blob.Bucket, compression string, logger *slog.Logger) service.DatasetWriter {
	if compression == "" {
		compression = compress.None
	}

	return &tableWriter{
		bucket:      bucket,
		compression: compression,
		logger:      logger,
	}
}

func (w *tableWriter) Compression() string {
	return w.compression
}

// FileName is the object name of a table with the given suffix and codec.
func FileName(table, suffix, codec string) string {
	return table + suffix + ".csv" + compress.Ext(codec)
}

// WriteTable streams table as CSV: a header row, then one row per record, no index column.
func (w *tableWriter) WriteTable(ctx context.Context, dir, suffix string, table entity.Table) (*entity.FileMetadata, string, error) {
	name := FileName(table.Name, suffix, w.compression)
	key := path.Join(dir, name)

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	bw, err := w.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType(w.compression)})
	if err != nil {
		return nil, "", errors.Wrapf(err, "create %s", key)
	}

	sum := &digestWriter{hash: sha256.New()}
	sink := io.MultiWriter(bw, sum)

	if err := writeCSV(writeCtx, sink, w.compression, table); err != nil {
		// cancelling before Close discards the partial object
		cancel()
		_ = bw.Close()

		return nil, "", errors.Wrapf(err, "write %s", key)
	}

	if err := bw.Close(); err != nil {
		return nil, "", errors.Wrapf(err, "close %s", key)
	}

	w.logger.Debug("Table written",
		slog.String("key", key),
		slog.Int("rows", table.Len),
		slog.Int64("bytes", sum.n),
	)

	return &entity.FileMetadata{
		Table:     table.Name,
		Columns:   table.Columns,
		Rows:      table.Len,
		SizeBytes: sum.n,
		SHA256:    hex.EncodeToString(sum.hash.Sum(nil)),
	}, name, nil
}

func writeCSV(ctx context.Context, sink io.Writer, codec string, table entity.Table) error {
	zw, err := compress.NewWriter(sink, codec)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(zw)
	if err := cw.Write(table.Columns); err != nil {
		return errors.WithStack(err)
	}

	for i := range table.Len {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return errors.WithStack(err)
			}
		}
		if err := cw.Write(table.Row(i)); err != nil {
			return errors.WithStack(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(zw.Close())
}

// WriteManifest stores manifest as dir/manifest.json.
func (w *tableWriter) WriteManifest(ctx context.Context, dir string, manifest *entity.Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode manifest")
	}

	key := path.Join(dir, entity.ManifestFile)
	if err := w.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func contentType(codec string) string {
	if codec == compress.LZ4 {
		return "application/x-lz4"
	}

	return "text/csv"
}

// digestWriter hashes and counts the bytes that reach the bucket.
type digestWriter struct {
	hash hash.Hash
	n    int64
}

func (d *digestWriter) Write(p []byte) (int, error) {
	d.n += int64(len(p))

	return d.hash.Write(p)
}
