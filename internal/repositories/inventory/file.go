package inventory

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-inventory/internal/codec"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

const (
	// DefaultPerm is used for inventory files when FileConfig.Perm is zero
	DefaultPerm fs.FileMode = 0o644

	tempPattern = ".inventory-*.tmp"

	// Error messages
	errPathEmpty = "path cannot be empty"
)

type fileRepository struct {
	perm fs.FileMode
}

// FileConfig contains configuration for the file inventory repository.
type FileConfig struct {
	// Perm is the permission of written files. Zero means DefaultPerm.
	Perm fs.FileMode
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Perm&^fs.ModePerm != 0 {
		return errors.InvalidArgumentf("perm %o has bits outside the permission mask", cfg.Perm)
	}
	return nil
}

// NewFile creates a new file-backed inventory repository
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	perm := cfg.Perm
	if perm == 0 {
		perm = DefaultPerm
	}

	return &fileRepository{
		perm: perm,
	}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}
	if input.Inventory == nil {
		return nil, errors.InvalidArgument("inventory cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "save canceled")
	}

	// Encode before touching the filesystem so an unencodable item leaves
	// the existing file as it was.
	data, err := codec.Marshal(input.Inventory)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode inventory for %s", input.Path)
	}
	data = append(data, '\n')

	if err := r.writeAtomic(input.Path, data); err != nil {
		return nil, err
	}

	return &SaveOutput{
		Path:      input.Path,
		ItemCount: input.Inventory.Len(),
	}, nil
}

// writeAtomic writes data to a temp file in the target directory and
// renames it over path.
func (r *fileRepository) writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return errors.IOFailuref(err, "failed to create temp file for %s", path).WithMeta("path", path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.IOFailuref(err, "failed to write %s", path).WithMeta("path", path)
	}
	if err = tmp.Sync(); err != nil {
		return errors.IOFailuref(err, "failed to sync %s", path).WithMeta("path", path)
	}
	if err = tmp.Chmod(r.perm); err != nil {
		return errors.IOFailuref(err, "failed to set permissions on %s", path).WithMeta("path", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.IOFailuref(err, "failed to close %s", path).WithMeta("path", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.IOFailuref(err, "failed to replace %s", path).WithMeta("path", path)
	}
	return nil
}

func (r *fileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load canceled")
	}

	f, err := os.Open(input.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("inventory file %s not found", input.Path).WithMeta("path", input.Path)
		}
		return nil, errors.IOFailuref(err, "failed to open %s", input.Path).WithMeta("path", input.Path)
	}
	defer func() { _ = f.Close() }()

	inv, err := codec.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load inventory from %s", input.Path).WithMeta("path", input.Path)
	}

	return &LoadOutput{
		Inventory: inv,
	}, nil
}

func (r *fileRepository) Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "exists check canceled")
	}

	info, err := os.Stat(input.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return &ExistsOutput{Exists: false}, nil
		}
		return nil, errors.IOFailuref(err, "failed to stat %s", input.Path).WithMeta("path", input.Path)
	}
	if info.IsDir() {
		return nil, errors.InvalidArgumentf("%s is a directory", input.Path)
	}

	return &ExistsOutput{Exists: true}, nil
}
