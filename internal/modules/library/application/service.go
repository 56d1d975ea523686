package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/library/domain"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/infrastructure/config"
)

type LibraryService interface {
	ListFolders(ctx context.Context, page, limit int) (*domain.FolderPage, error)
	ListFiles(ctx context.Context, folderName string, page, limit int) (*domain.FilePage, error)
}

type libraryService struct {
	root     string
	suffixes []string
	timeout  time.Duration
}

func NewLibraryService(cfg config.LibraryConfig) LibraryService {
	return &libraryService{
		root:     cfg.RootPath,
		suffixes: cfg.Suffixes,
		timeout:  cfg.ListTimeout,
	}
}

func (s *libraryService) ListFolders(ctx context.Context, page, limit int) (*domain.FolderPage, error) {
	if err := validatePaging(page, limit); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	entries, err := readDir(ctx, s.root)
	if os.IsNotExist(err) {
		return nil, domain.ErrRootNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read library root: %w", err)
	}

	folders := []domain.Folder{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		count, err := s.countMatching(ctx, filepath.Join(s.root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to scan folder %s: %w", entry.Name(), err)
		}
		folders = append(folders, domain.Folder{Name: entry.Name(), FileCount: count})
	}

	window, totalPages := paginate(len(folders), page, limit)
	return &domain.FolderPage{
		Folders:      folders[window[0]:window[1]],
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalFolders: len(folders),
	}, nil
}

func (s *libraryService) ListFiles(ctx context.Context, folderName string, page, limit int) (*domain.FilePage, error) {
	if folderName == "" {
		return nil, domain.ErrFolderNameRequired
	}
	if err := validatePaging(page, limit); err != nil {
		return nil, err
	}

	dir, err := s.resolve(folderName)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	entries, err := readDir(ctx, dir)
	if os.IsNotExist(err) {
		return nil, domain.ErrFolderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.matches(entry.Name()) {
			files = append(files, entry.Name())
		}
	}

	window, totalPages := paginate(len(files), page, limit)
	return &domain.FilePage{
		Files:       files[window[0]:window[1]],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalFiles:  len(files),
	}, nil
}

// resolve joins folderName onto the library root and rejects any result that
// is not a strict descendant. The comparison is segment-aware: a sibling like
// "audio-evil" never passes for root "audio".
func (s *libraryService) resolve(folderName string) (string, error) {
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve library root: %w", err)
	}

	candidate := filepath.Join(rootAbs, folderName)

	rel, err := filepath.Rel(rootAbs, candidate)
	if err != nil {
		return "", domain.ErrPathOutsideRoot
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.ErrPathOutsideRoot
	}

	return candidate, nil
}

func (s *libraryService) countMatching(ctx context.Context, dir string) (int, error) {
	entries, err := readDir(ctx, dir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && s.matches(entry.Name()) {
			count++
		}
	}
	return count, nil
}

func (s *libraryService) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range s.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// readDir runs os.ReadDir under the caller's context so a stalled filesystem
// (network mount, dead disk) cannot hang the request past its deadline.
func readDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	type result struct {
		entries []os.DirEntry
		err     error
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := make(chan result, 1)
	go func() {
		entries, err := os.ReadDir(path)
		ch <- result{entries: entries, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.entries, res.err
	}
}

func validatePaging(page, limit int) error {
	if page < 1 {
		return domain.ErrInvalidPage
	}
	if limit < 1 {
		return domain.ErrInvalidLimit
	}
	return nil
}

// paginate clamps a (page, limit) window onto a slice of length total and
// returns the [start, end) bounds plus the page count. A page past the end
// yields an empty window, not an error.
func paginate(total, page, limit int) ([2]int, int) {
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return [2]int{start, end}, totalPages
}
