package reference

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalogs читает все yaml-справочники из папки reference/catalogs/
func LoadCatalogs(dir string) (map[string]Catalog, error) {
	result := make(map[string]Catalog)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if !strings.HasSuffix(file.Name(), ".yaml") && !strings.HasSuffix(file.Name(), ".yml") {
			continue
		}
		path := filepath.Join(dir, file.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var cat Catalog
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, err
		}
		// Имя справочника — из cat.Name или из имени файла
		name := cat.Name
		if name == "" {
			name = strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		}
		result[name] = cat
	}
	return result, nil
}
