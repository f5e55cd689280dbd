package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarmadiali98/ReLico-sub000/api"
	c "github.com/sarmadiali98/ReLico-sub000/config"
)

func ignore(entry os.DirEntry) bool {
	return entry.IsDir() ||
		strings.HasPrefix(entry.Name(), ".") ||
		strings.HasPrefix(entry.Name(), "_") ||
		filepath.Ext(entry.Name()) != ".rebeca"
}

func main() {
	var requiredSubString string
	if len(os.Args) > 1 {
		requiredSubString = os.Args[1]
	}

	entries, err := os.ReadDir("examples/")
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read 'examples/' dir: %v", err)
		return
	}

	attemptedModels := 0
	perfectModels := 0
	for _, entry := range entries {
		if ignore(entry) {
			continue
		}
		modelPath := "examples/" + entry.Name()
		if !strings.Contains(modelPath, requiredSubString) {
			continue
		}
		fmt.Printf("translating model: %s\n", modelPath)
		config := c.Default()
		config.Debug = true
		result := api.Run(modelPath, config)
		perfect := result == api.RunSuccessful
		attemptedModels++
		if perfect {
			perfectModels++
		}
	}
	fmt.Printf("%d/%d models translated without warnings\n", perfectModels, attemptedModels)
	fmt.Println("done")
}
