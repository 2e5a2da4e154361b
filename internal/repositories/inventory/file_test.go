package inventory_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/testutils"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	path string
	repo inventoryrepo.Repository
	ctx  context.Context
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "backpack.json")
	s.ctx = context.Background()

	repo, err := inventoryrepo.NewFile(&inventoryrepo.FileConfig{})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositoryTestSuite) TestNewFile() {
	testCases := []struct {
		name    string
		config  *inventoryrepo.FileConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with default perm",
			config: &inventoryrepo.FileConfig{},
		},
		{
			name:   "success with explicit perm",
			config: &inventoryrepo.FileConfig{Perm: 0o600},
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with non-permission bits",
			config:  &inventoryrepo.FileConfig{Perm: fs.ModeDir | 0o755},
			wantErr: true,
			errMsg:  "outside the permission mask",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := inventoryrepo.NewFile(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *FileRepositoryTestSuite) TestSaveAndLoad() {
	backpack := testutils.CreateTestBackpack(testutils.TestOwner)

	out, err := s.repo.Save(s.ctx, inventoryrepo.SaveInput{
		Path:      s.path,
		Inventory: backpack,
	})
	s.Require().NoError(err)
	s.Equal(s.path, out.Path)
	s.Equal(5, out.ItemCount)

	loaded, err := s.repo.Load(s.ctx, inventoryrepo.LoadInput{Path: s.path})
	s.Require().NoError(err)
	s.Equal(testutils.TestOwner, loaded.Inventory.Owner())
	s.Require().Equal(backpack.Len(), loaded.Inventory.Len())

	for i, e := range loaded.Inventory.Items() {
		want := backpack.Items()[i]
		s.Equal(want.GetID(), e.GetID())
		s.Equal(want.GetType(), e.GetType())
		s.Equal(want.Describe(), e.Describe())
	}
}

func (s *FileRepositoryTestSuite) TestSaveReplacesExistingFile() {
	backpack := testutils.CreateTestBackpack(testutils.TestOwner)
	_, err := s.repo.Save(s.ctx, inventoryrepo.SaveInput{Path: s.path, Inventory: backpack})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, inventoryrepo.SaveInput{Path: s.path, Inventory: entities.New("Turin")})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, inventoryrepo.LoadInput{Path: s.path})
	s.Require().NoError(err)
	s.Equal("Turin", loaded.Inventory.Owner())
	s.Equal(0, loaded.Inventory.Len())

	s.assertNoTempFiles()
}

func (s *FileRepositoryTestSuite) TestSaveUsesPerm() {
	repo, err := inventoryrepo.NewFile(&inventoryrepo.FileConfig{Perm: 0o600})
	s.Require().NoError(err)

	_, err = repo.Save(s.ctx, inventoryrepo.SaveInput{Path: s.path, Inventory: entities.New("")})
	s.Require().NoError(err)

	info, err := os.Stat(s.path)
	s.Require().NoError(err)
	s.Equal(fs.FileMode(0o600), info.Mode().Perm())
}

func (s *FileRepositoryTestSuite) TestSaveUnencodableKeepsPreviousFile() {
	original := []byte(`{"owner": "Beleg", "items": []}`)
	s.Require().NoError(os.WriteFile(s.path, original, 0o644))

	inv := entities.New(testutils.TestOwner)
	rope, err := item.NewItem(&item.ItemConfig{Name: "Rope"})
	s.Require().NoError(err)
	inv.Add(&oddItem{Item: rope})

	_, err = s.repo.Save(s.ctx, inventoryrepo.SaveInput{Path: s.path, Inventory: inv})
	s.Require().Error(err)
	s.True(errors.IsUnknownVariant(err))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Equal(original, data)
	s.assertNoTempFiles()
}

func (s *FileRepositoryTestSuite) TestSaveErrors() {
	testCases := []struct {
		name  string
		input inventoryrepo.SaveInput
		check func(err error)
	}{
		{
			name:  "empty path",
			input: inventoryrepo.SaveInput{Inventory: entities.New("")},
			check: func(err error) { s.True(errors.IsInvalidArgument(err)) },
		},
		{
			name:  "nil inventory",
			input: inventoryrepo.SaveInput{Path: s.path},
			check: func(err error) { s.True(errors.IsInvalidArgument(err)) },
		},
		{
			name: "missing directory",
			input: inventoryrepo.SaveInput{
				Path:      filepath.Join(s.dir, "missing", "backpack.json"),
				Inventory: entities.New(""),
			},
			check: func(err error) {
				s.True(errors.IsIOFailure(err))
				s.Equal(filepath.Join(s.dir, "missing", "backpack.json"), errors.GetMeta(err)["path"])
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.Save(s.ctx, tc.input)
			s.Require().Error(err)
			s.Nil(out)
			tc.check(err)
		})
	}
}

func (s *FileRepositoryTestSuite) TestSaveCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.Save(ctx, inventoryrepo.SaveInput{Path: s.path, Inventory: entities.New("")})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))

	_, statErr := os.Stat(s.path)
	s.True(os.IsNotExist(statErr))
}

func (s *FileRepositoryTestSuite) TestLoadErrors() {
	testCases := []struct {
		name    string
		content string
		path    string
		check   func(err error)
	}{
		{
			name:  "empty path",
			check: func(err error) { s.True(errors.IsInvalidArgument(err)) },
		},
		{
			name: "missing file",
			path: "nope.json",
			check: func(err error) {
				s.True(errors.IsNotFound(err))
				s.Equal(filepath.Join(s.dir, "nope.json"), errors.GetMeta(err)["path"])
			},
		},
		{
			name:    "unknown variant",
			path:    "staff.json",
			content: `{"owner": "Beleg", "items": [{"type_tag": "Staff", "name": "Wand"}]}`,
			check: func(err error) {
				s.True(errors.IsUnknownVariant(err))
				s.Equal("Staff", errors.GetMeta(err)["type_tag"])
			},
		},
		{
			name:    "malformed record",
			path:    "broken.json",
			content: `{"owner": "Beleg", "items": [{"type_tag": "Pike", "name": "Gungnir"}]}`,
			check:   func(err error) { s.True(errors.IsMalformedRecord(err)) },
		},
		{
			name:    "truncated file",
			path:    "truncated.json",
			content: `{"owner": "Beleg", "items": [`,
			check:   func(err error) { s.True(errors.IsMalformedRecord(err)) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := ""
			if tc.path != "" {
				path = filepath.Join(s.dir, tc.path)
			}
			if tc.content != "" {
				s.Require().NoError(os.WriteFile(path, []byte(tc.content), 0o644))
			}

			out, err := s.repo.Load(s.ctx, inventoryrepo.LoadInput{Path: path})
			s.Require().Error(err)
			s.Nil(out)
			tc.check(err)
		})
	}
}

func (s *FileRepositoryTestSuite) TestLoadDirectory() {
	_, err := s.repo.Load(s.ctx, inventoryrepo.LoadInput{Path: s.dir})
	s.Require().Error(err)
	s.True(errors.IsIOFailure(err))
}

func (s *FileRepositoryTestSuite) TestExists() {
	out, err := s.repo.Exists(s.ctx, inventoryrepo.ExistsInput{Path: s.path})
	s.Require().NoError(err)
	s.False(out.Exists)

	_, err = s.repo.Save(s.ctx, inventoryrepo.SaveInput{Path: s.path, Inventory: entities.New("")})
	s.Require().NoError(err)

	out, err = s.repo.Exists(s.ctx, inventoryrepo.ExistsInput{Path: s.path})
	s.Require().NoError(err)
	s.True(out.Exists)

	_, err = s.repo.Exists(s.ctx, inventoryrepo.ExistsInput{Path: s.dir})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Exists(s.ctx, inventoryrepo.ExistsInput{})
	s.True(errors.IsInvalidArgument(err))
}

// Helper methods

func (s *FileRepositoryTestSuite) assertNoTempFiles() {
	matches, err := filepath.Glob(filepath.Join(s.dir, ".inventory-*.tmp"))
	s.Require().NoError(err)
	s.Empty(matches)
}

// oddItem is an entity the codec has no record for
type oddItem struct {
	*item.Item
}

func (o *oddItem) GetType() string {
	return "Odd"
}
