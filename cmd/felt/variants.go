package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/felt/variant"
)

// VariantsCmd lists the built-in catalog and checks HCL variant files.
type VariantsCmd struct {
	Config string `kong:"type='path',help='HCL variant file or directory to validate'"`
}

func (c *VariantsCmd) Run() error {
	fmt.Println("built-in variants:")
	for _, preset := range variant.Catalog() {
		fmt.Printf("  %-7s %s\n", preset.Code, preset.Name)
	}

	if c.Config == "" {
		return nil
	}

	files, err := configFiles(c.Config)
	if err != nil {
		return err
	}
	for _, file := range files {
		variants, err := variant.LoadHCL(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		fmt.Printf("\n%s:\n", file)
		for _, v := range variants {
			fmt.Printf("  %-7s %s (%d streets)\n", v.Code, v.Name, len(v.Streets))
		}
	}
	return nil
}

// configFiles expands a directory into its .hcl files.
func configFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := filepath.Glob(filepath.Join(path, "*.hcl"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files in %s", path)
	}
	return files, nil
}
