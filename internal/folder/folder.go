package folder

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/xolan/rfext/internal/logging"
	"github.com/xolan/rfext/internal/osutil"
	"github.com/xolan/rfext/internal/pathnorm"
)

// Policy bounds the retry loops of Create and Delete.
type Policy struct {
	DeleteAttempts int
	CreateAttempts int
	// Delay is the pause between two failed attempts. There is no pause
	// after the last attempt.
	Delay time.Duration
}

// DefaultPolicy returns 4 delete attempts, 3 create attempts and a 2 second delay.
func DefaultPolicy() Policy {
	return Policy{
		DeleteAttempts: 4,
		CreateAttempts: 3,
		Delay:          2 * time.Second,
	}
}

func (p Policy) normalized() Policy {
	if p.DeleteAttempts < 1 {
		p.DeleteAttempts = 1
	}
	if p.CreateAttempts < 1 {
		p.CreateAttempts = 1
	}
	if p.Delay < 0 {
		p.Delay = 0
	}
	return p
}

const dirPerm = 0o755

// Folder is a handle that owns one normalized folder path until Close.
type Folder struct {
	path     string
	id       string
	reg      *Registry
	policy   Policy
	fs       osutil.FileSystem
	progress io.Writer
	sleep    func(time.Duration)
	logger   logging.Logger
	normOpts pathnorm.Options
	closed   atomic.Bool
}

// Option configures a Folder.
type Option func(*Folder)

// WithPolicy overrides the retry policy.
func WithPolicy(p Policy) Option {
	return func(f *Folder) {
		f.policy = p
	}
}

// WithFileSystem replaces the filesystem the handle operates on.
func WithFileSystem(fsys osutil.FileSystem) Option {
	return func(f *Folder) {
		f.fs = fsys
	}
}

// WithProgress sets the writer that receives one line per attempt.
func WithProgress(w io.Writer) Option {
	return func(f *Folder) {
		f.progress = w
	}
}

// WithSleep replaces time.Sleep for the pauses between attempts.
func WithSleep(sleep func(time.Duration)) Option {
	return func(f *Folder) {
		f.sleep = sleep
	}
}

// WithLogger sets the logger attempts are reported to.
func WithLogger(l logging.Logger) Option {
	return func(f *Folder) {
		f.logger = l
	}
}

// WithNormalizeOptions changes how the constructor path is normalized.
func WithNormalizeOptions(opts pathnorm.Options) Option {
	return func(f *Folder) {
		f.normOpts = opts
	}
}

// New normalizes path and claims it in reg. It fails with ErrNoPath for an
// empty path and with ErrDuplicateOwnership when another live handle owns the
// same normalized path. The caller must Close the returned handle.
func New(reg *Registry, path string, opts ...Option) (*Folder, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}

	f := &Folder{
		id:       uuid.NewString(),
		reg:      reg,
		policy:   DefaultPolicy(),
		fs:       osutil.OSFileSystem{},
		progress: io.Discard,
		sleep:    time.Sleep,
		logger:   logging.GetLogger("folder"),
		normOpts: pathnorm.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.policy = f.policy.normalized()

	f.path = pathnorm.Normalize(path, f.normOpts)
	if f.path == "" {
		return nil, ErrNoPath
	}
	if !reg.claim(f.path, f.id) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateOwnership, f.path)
	}
	f.logger = f.logger.With().Str("path", f.path).Str("handle", f.id).Logger()
	f.logger.Debug().Msg("folder claimed")
	return f, nil
}

// Path returns the normalized path owned by the handle.
func (f *Folder) Path() string { return f.path }

// ID returns the handle's unique identifier, recorded as the claim owner.
func (f *Folder) ID() string { return f.id }

// Policy returns the effective retry policy.
func (f *Folder) Policy() Policy { return f.policy }

// Exists reports whether the folder is currently present on disk.
func (f *Folder) Exists() bool {
	return osutil.IsDir(f.fs, f.path)
}

// Close releases the path claim. Only the first call has an effect; later
// calls never touch a claim taken by a newer handle for the same path.
func (f *Folder) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	if f.reg.release(f.path, f.id) {
		f.logger.Debug().Msg("folder released")
	}
	return nil
}

// Delete removes the folder and everything below it.
//
// When the folder does not exist, confirm decides the outcome: true reports
// a failure, false a success. Neither case touches the filesystem.
func (f *Folder) Delete(confirm bool) (bool, string) {
	const op = "folder.Delete"
	if f.closed.Load() {
		return false, f.closedMessage(op)
	}

	if !f.Exists() {
		msg := fmt.Sprintf("Nothing to delete. The folder '%s' does not exist.", f.path)
		if confirm {
			return false, op + ": " + msg
		}
		return true, msg
	}

	n := f.policy.DeleteAttempts
	var details []string
	for attempt := 1; attempt <= n; attempt++ {
		f.report("Trying to delete '%s'", f.path)
		f.logger.Debug().Int("attempt", attempt).Int("of", n).Msg("delete attempt")

		err := removeTree(f.fs, f.path)
		if !f.Exists() {
			msg := fmt.Sprintf("Folder '%s' deleted.", f.path)
			f.logger.Debug().Int("attempt", attempt).Msg(msg)
			return true, msg
		}
		if err != nil {
			details = append(details, err.Error())
		}
		details = append(details, fmt.Sprintf("(%d/%d) Problem with deleting the folder '%s'. Folder still present.", attempt, n, f.path))
		f.logger.Warn().Err(err).Int("attempt", attempt).Msg("folder still present")

		if attempt < n {
			f.sleep(f.policy.Delay)
		}
	}
	return false, op + ": " + strings.Join(details, "\n")
}

// Create makes the folder. An existing folder is kept as is unless overwrite
// is set, in which case it is deleted first. With recursive, missing parent
// folders are created as well.
func (f *Folder) Create(overwrite, recursive bool) (bool, string) {
	const op = "folder.Create"
	if f.closed.Load() {
		return false, f.closedMessage(op)
	}

	if f.Exists() {
		if !overwrite {
			return true, fmt.Sprintf("Folder '%s' already exists.", f.path)
		}
		if ok, msg := f.Delete(true); !ok {
			return false, op + ": " + msg
		}
	}

	n := f.policy.CreateAttempts
	var details []string
	for attempt := 1; attempt <= n; attempt++ {
		f.report("Trying to create '%s'", f.path)
		f.logger.Debug().Int("attempt", attempt).Int("of", n).Bool("recursive", recursive).Msg("create attempt")

		var err error
		if recursive {
			err = f.fs.MkdirAll(f.path, dirPerm)
		} else {
			err = f.fs.Mkdir(f.path, dirPerm)
		}
		if f.Exists() {
			msg := fmt.Sprintf("Folder '%s' created.", f.path)
			f.logger.Debug().Int("attempt", attempt).Msg(msg)
			return true, msg
		}
		if err != nil {
			details = append(details, err.Error())
		}
		details = append(details, fmt.Sprintf("(%d/%d) Problem with creating the folder '%s'.", attempt, n, f.path))
		f.logger.Warn().Err(err).Int("attempt", attempt).Msg("folder not created")

		if attempt < n {
			f.sleep(f.policy.Delay)
		}
	}
	return false, op + ": " + strings.Join(details, "\n")
}

func (f *Folder) closedMessage(op string) string {
	return fmt.Sprintf("%s: %v: '%s'", op, ErrClosed, f.path)
}

// report writes a progress line; write errors are ignored.
func (f *Folder) report(format string, args ...any) {
	if f.progress == nil {
		return
	}
	_, _ = fmt.Fprintf(f.progress, format+"\n", args...)
}
