package readers

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileReader reads blocks through plain file descriptors. Files are opened
// once up front; per-operation reads use ReadAt, which is a positioned read
// and therefore safe across workers sharing the descriptors.
type FileReader struct {
	files     []*os.File
	blockSize int
}

func NewFileReader(paths []string, blockSize int) (*FileReader, error) {
	r := &FileReader{
		files:     make([]*os.File, 0, len(paths)),
		blockSize: blockSize,
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			_ = r.Close()

			return nil, errors.Wrapf(err, "open %v", path)
		}

		r.files = append(r.files, f)
	}

	return r, nil
}

func (r *FileReader) ReadBlock(file int, offset int64) ([]byte, error) {
	b := make([]byte, r.blockSize)

	n, err := r.files[file].ReadAt(b, offset)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrShortRead, "got %v of %v bytes at offset %v", n, r.blockSize, offset)
		}

		return nil, err
	}

	return b, nil
}

func (r *FileReader) Close() error {
	var firstErr error
	for _, f := range r.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
