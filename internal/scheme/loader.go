package scheme

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LoadDocument читает restrictions.json с диска и декодирует его.
func LoadDocument(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	doc, err := ParseDocument(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument декодирует документ. Сырые ошибки json наружу не отдаём —
// потребитель получает "malformed document", а не панику парсера.
func ParseDocument(b []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}
	for key, s := range doc {
		if s == nil {
			return nil, fmt.Errorf("malformed document: scheme %q is null", key)
		}
	}
	return doc, nil
}

// Get возвращает схему по id. ok=false — неизвестная схема.
func (d Document) Get(id string) (*Scheme, bool) {
	s, ok := d[id]
	return s, ok
}

// Keys — отсортированный список id схем.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode кодирует документ обратно в JSON (round-trip с исходным файлом:
// ключи объекта — без гарантии порядка, последовательности — с сохранением порядка).
func (d Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "    ")
}
