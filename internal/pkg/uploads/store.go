package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxFileSize = 15 << 20 // 15MB

var ErrFileTooLarge = errors.New("file exceeds maximum size")

var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".pdf":  {},
}

// Store writes uploaded files to a local directory and serves them back
// under a public URL prefix.
type Store struct {
	dir       string
	urlPrefix string
}

func New(dir, urlPrefix string) (*Store, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &Store{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save persists the uploaded content under a collision-free name derived
// from the form field and returns the stored file name and its public URL.
func (s *Store) Save(fieldName, originalName string, size int64, content io.Reader) (fileName, fileURL string, err error) {
	if size > MaxFileSize {
		return "", "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", "", ErrUnsupportedFileType
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	fileName = fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixMilli(), suffix, ext)

	file, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("close upload file: %w", closeErr)
		}
	}()

	written, err := io.Copy(file, io.LimitReader(content, MaxFileSize+1))
	if err != nil {
		return "", "", fmt.Errorf("write upload file: %w", err)
	}
	if written > MaxFileSize {
		removeErr := os.Remove(filepath.Join(s.dir, fileName))
		if removeErr != nil {
			return "", "", fmt.Errorf("remove oversized upload: %w", removeErr)
		}
		return "", "", ErrFileTooLarge
	}

	return fileName, s.urlPrefix + "/" + fileName, nil
}
