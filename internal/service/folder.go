package service

import (
	"io"

	"github.com/xolan/rfext/internal/folder"
	"github.com/xolan/rfext/internal/logging"
)

// FolderService creates and deletes folders through short-lived handles.
// It owns the ownership registry shared by every handle in the process.
type FolderService struct {
	config   *ConfigService
	registry *folder.Registry
	progress io.Writer
	extra    []folder.Option
}

// NewFolderService creates a FolderService with a fresh registry. Extra
// options are applied after the ones derived from the configuration.
func NewFolderService(cfg *ConfigService, opts ...folder.Option) *FolderService {
	return &FolderService{
		config:   cfg,
		registry: folder.NewRegistry(),
		progress: io.Discard,
		extra:    opts,
	}
}

// SetProgress sets the writer that receives per-attempt progress lines.
func (s *FolderService) SetProgress(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.progress = w
}

// Registry returns the ownership registry.
func (s *FolderService) Registry() *folder.Registry {
	return s.registry
}

// Open claims path and returns a handle configured from the current config.
// The caller must Close it.
func (s *FolderService) Open(path string) (*folder.Folder, error) {
	cfg := s.config.Get()
	opts := []folder.Option{
		folder.WithPolicy(cfg.FolderPolicy()),
		folder.WithProgress(s.progress),
		folder.WithLogger(logging.GetLogger("folder")),
	}
	return folder.New(s.registry, path, append(opts, s.extra...)...)
}

// Create creates the folder at path. The error is only set when no handle
// could be obtained (empty path, path owned by another handle).
func (s *FolderService) Create(path string, overwrite, recursive bool) (Result, error) {
	f, err := s.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = f.Close() }()

	ok, msg := f.Create(overwrite, recursive)
	s.log(ok, "create", f.Path(), msg)
	return Result{Success: ok, Message: msg}, nil
}

// Delete deletes the folder at path. With confirm, a missing folder counts
// as a failure.
func (s *FolderService) Delete(path string, confirm bool) (Result, error) {
	f, err := s.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = f.Close() }()

	ok, msg := f.Delete(confirm)
	s.log(ok, "delete", f.Path(), msg)
	return Result{Success: ok, Message: msg}, nil
}

// Claims returns the paths currently owned by open handles.
func (s *FolderService) Claims() []folder.Claim {
	return s.registry.Claims()
}

func (s *FolderService) log(ok bool, op, path, msg string) {
	logger := logging.GetLogger("folder")
	if ok {
		logger.Info().Str("op", op).Str("path", path).Msg(msg)
		return
	}
	logger.Warn().Str("op", op).Str("path", path).Msg(msg)
}
