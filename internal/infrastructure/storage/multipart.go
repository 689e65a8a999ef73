package storage

import (
	"fmt"
	"io"
	"mime/multipart"
)

// ReadFormFile loads an uploaded part into memory, refusing anything over maxBytes.
func ReadFormFile(fh *multipart.FileHeader, maxBytes int64) (File, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return File{}, ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("read upload: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return File{}, ErrTooLarge
	}

	return File{Name: fh.Filename, Data: data}, nil
}
