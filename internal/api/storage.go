package api

import (
	"sync"
	"time"

	"rodizio/internal/reference"
	"rodizio/internal/scheme"
)

// Storage держит документ и справочники в памяти.
// Данные неизменяемые (справочный контент) — единственная запись это
// атомарная подмена целиком при reload.
type Storage struct {
	mu       sync.RWMutex
	doc      scheme.Document
	catalogs map[string]reference.Catalog
	loadedAt time.Time

	// откуда читали — нужно для reload и meta
	dataFile    string
	catalogsDir string
}

func NewStorage(doc scheme.Document, catalogs map[string]reference.Catalog, dataFile, catalogsDir string) *Storage {
	return &Storage{
		doc:         doc,
		catalogs:    catalogs,
		loadedAt:    time.Now().UTC(),
		dataFile:    dataFile,
		catalogsDir: catalogsDir,
	}
}

func (s *Storage) Scheme(id string) (*scheme.Scheme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sch, ok := s.doc.Get(id)
	return sch, ok
}

func (s *Storage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Keys()
}

// Document отдаёт текущую ссылку на документ. Документ после загрузки
// никто не мутирует, поэтому отдавать её наружу безопасно.
func (s *Storage) Document() scheme.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *Storage) Catalog(name string) (reference.Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.catalogs[name]
	return c, ok
}

func (s *Storage) Catalogs() map[string]reference.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogs
}

func (s *Storage) CatalogNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.catalogs))
	for n := range s.catalogs {
		names = append(names, n)
	}
	return names
}

func (s *Storage) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *Storage) DataFile() string { return s.dataFile }

// Reload перечитывает документ и справочники с диска. Новый документ сначала
// валидируем на временной копии — живые данные подменяем только если он годен.
func (s *Storage) Reload() (int, []FieldError, error) {
	doc, err := scheme.LoadDocument(s.dataFile)
	if err != nil {
		return 0, nil, err
	}
	catalogs, err := reference.LoadCatalogs(s.catalogsDir)
	if err != nil {
		return 0, nil, err
	}
	if errs := ValidateDocument(doc, catalogs); len(errs) > 0 {
		return 0, errs, nil
	}

	// атомарная замена под write-lock
	s.mu.Lock()
	s.doc = doc
	s.catalogs = catalogs
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	return len(doc), nil, nil
}
