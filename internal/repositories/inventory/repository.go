// Package inventory provides the interface for inventory persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory Repository

import (
	"context"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
)

// Repository defines the interface for inventory persistence.
// An inventory is addressed by the path of the file holding it.
type Repository interface {
	// Save writes the inventory, replacing any previous content.
	// The previous file is left untouched if encoding or writing fails.
	// Returns errors.InvalidArgument for an empty path or nil inventory
	// Returns errors.UnknownVariant if an item cannot be encoded
	// Returns errors.IOFailure for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads and decodes the inventory at the path
	// Returns errors.InvalidArgument for an empty path
	// Returns errors.NotFound if the file does not exist
	// Returns errors.UnknownVariant or errors.MalformedRecord for bad content
	// Returns errors.IOFailure for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Exists reports whether an inventory file is present at the path
	// Returns errors.InvalidArgument for an empty path
	// Returns errors.IOFailure if the path cannot be inspected
	Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error)
}

// SaveInput defines the input for saving an inventory
type SaveInput struct {
	Path      string
	Inventory *entities.Inventory
}

// SaveOutput defines the output for saving an inventory
type SaveOutput struct {
	Path      string
	ItemCount int
}

// LoadInput defines the input for loading an inventory
type LoadInput struct {
	Path string
}

// LoadOutput defines the output for loading an inventory
type LoadOutput struct {
	Inventory *entities.Inventory
}

// ExistsInput defines the input for checking an inventory file
type ExistsInput struct {
	Path string
}

// ExistsOutput defines the output for checking an inventory file
type ExistsOutput struct {
	Exists bool
}
