// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
	inventoryrepomock "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory/mock"
)

// ExpectInventoryLoad sets up a mock expectation for loading an inventory file
func ExpectInventoryLoad(
	ctx context.Context, mockRepo *inventoryrepomock.MockRepository,
	path string, inv *inventory.Inventory, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Load(ctx, inventoryrepo.LoadInput{Path: path}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Load(ctx, inventoryrepo.LoadInput{Path: path}).
		Return(&inventoryrepo.LoadOutput{Inventory: inv}, nil)
}

// ExpectInventorySave sets up a mock expectation for saving an inventory file.
// The saved inventory is captured into saved when it is non-nil.
func ExpectInventorySave(
	ctx context.Context, mockRepo *inventoryrepomock.MockRepository,
	path string, saved **inventory.Inventory,
) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.SaveInput) (*inventoryrepo.SaveOutput, error) {
			if input.Path != path {
				return nil, errUnexpectedPath(input.Path, path)
			}
			if saved != nil {
				*saved = input.Inventory
			}
			return &inventoryrepo.SaveOutput{
				Path:      input.Path,
				ItemCount: input.Inventory.Len(),
			}, nil
		})
}

// ExpectInventoryExists sets up a mock expectation for checking an inventory file
func ExpectInventoryExists(
	ctx context.Context, mockRepo *inventoryrepomock.MockRepository,
	path string, exists bool,
) *gomock.Call {
	return mockRepo.EXPECT().
		Exists(ctx, inventoryrepo.ExistsInput{Path: path}).
		Return(&inventoryrepo.ExistsOutput{Exists: exists}, nil)
}
