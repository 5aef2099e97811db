package document

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// documents holds decoded documents keyed by the hash of their content.
var documents sync.Map

// entry decodes its document at most once.
type entry struct {
	once sync.Once
	doc  *Document
	err  error
}

// Read decodes the document read from r. Identical content read earlier is
// served from the cache without decoding again.
func Read(ctx context.Context, r io.Reader, opts ...Option) (*Document, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("source", "reader"))
	}

	return cached(ctx, data, opts...)
}

// Load decodes the document stored at path, using the cache as [Read] does.
func Load(ctx context.Context, path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	d, err := Read(ctx, f, opts...)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, e.With(slog.String("path", path))
		}

		return nil, err
	}

	return d, nil
}

func cached(ctx context.Context, data []byte, opts ...Option) (*Document, error) {
	o := makeOptions(opts...)

	if o.noCache {
		return Decode(ctx, data, opts...)
	}

	hash := xxh3.Hash(data)
	key := strconv.FormatUint(hash, 36)

	v, hit := documents.LoadOrStore(key, new(entry))
	e := v.(*entry)

	o.logger.TraceContext(ctx, "cache lookup",
		slog.String("hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit))

	e.once.Do(func() { e.doc, e.err = Decode(ctx, data, opts...) })

	// Failures are not cached, so the same content is decoded again on
	// the next read.
	if e.err != nil {
		documents.CompareAndDelete(key, e)
	}

	return e.doc, e.err
}

// ClearCache discards every cached document.
func ClearCache() {
	documents.Clear()
}
