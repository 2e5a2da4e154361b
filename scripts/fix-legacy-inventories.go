package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
)

// Minimal view of a saved inventory to spot old-format records
type inventoryData struct {
	Items []struct {
		TypeTag string `json:"type_tag"`
		Class   string `json:"class"`
	} `json:"items"`
}

func main() {
	dir := os.Getenv("INVENTORY_DIR")
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if dir == "" {
		dir = "."
	}

	repo, err := inventoryrepo.NewFile(&inventoryrepo.FileConfig{})
	if err != nil {
		log.Fatal("Failed to create repository:", err)
	}
	ctx := context.Background()

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		log.Fatal("Failed to list inventory files:", err)
	}

	fmt.Println("Scanning for old-format inventories in", dir)

	var legacyPaths []string
	var corruptedCount int

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", path, err)
			continue
		}

		var invData inventoryData
		if err := json.Unmarshal(data, &invData); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", path)
			corruptedCount++
			continue
		}

		// Records written before type_tag existed only carry "class"
		for _, rec := range invData.Items {
			if rec.TypeTag == "" && rec.Class != "" {
				fmt.Printf("✗ Old format detected in %s: item tagged with class %q\n", path, rec.Class)
				legacyPaths = append(legacyPaths, path)
				break
			}
		}
	}

	fmt.Printf("\nChecked %d files, found %d old-format and %d corrupted\n", len(paths), len(legacyPaths), corruptedCount)

	if len(legacyPaths) == 0 {
		fmt.Println("Nothing to rewrite!")
		return
	}

	fmt.Print("\nDo you want to REWRITE these inventories in the current format? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, path := range legacyPaths {
		loaded, err := repo.Load(ctx, inventoryrepo.LoadInput{Path: path})
		if err != nil {
			fmt.Printf("Failed to load %s: %v\n", path, err)
			continue
		}
		saved, err := repo.Save(ctx, inventoryrepo.SaveInput{Path: path, Inventory: loaded.Inventory})
		if err != nil {
			fmt.Printf("Failed to rewrite %s: %v\n", path, err)
			continue
		}
		fmt.Printf("Rewrote %s (%d items)\n", path, saved.ItemCount)
	}
	fmt.Println("\nRewrite complete!")
}
