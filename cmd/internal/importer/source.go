package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"companydata/cmd/internal/infrastructure/aws/storage"
)

const fileExt = ".csv"

// Source is a tree of per-company CSV files: one directory per entity, one
// <duns>.csv file per company inside it.
type Source interface {
	// Check fails when the root of the tree cannot be read at all.
	Check(ctx context.Context) error
	// List returns the sorted file stems of dir. A missing dir has none.
	List(ctx context.Context, dir string) ([]string, error)
	Open(ctx context.Context, dir, stem string) (io.ReadCloser, error)
}

// NewSource picks the source for location: an s3://bucket/prefix URI or a
// local directory.
func NewSource(ctx context.Context, location, region string) (Source, error) {
	if storage.IsS3URI(location) {
		return storage.NewImportSource(ctx, location, region)
	}
	return NewDirSource(location), nil
}

type DirSource struct {
	root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (s *DirSource) String() string {
	return s.root
}

func (s *DirSource) Check(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.root)
	}
	_, err = os.ReadDir(s.root)
	return err
}

func (s *DirSource) List(_ context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stems []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != fileExt {
			continue
		}
		stems = append(stems, strings.TrimSuffix(name, fileExt))
	}
	return stems, nil
}

func (s *DirSource) Open(_ context.Context, dir, stem string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, dir, stem+fileExt))
}
