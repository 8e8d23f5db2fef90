package record

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implementa Store sobre arquivos JSON, um por coleção, no
// diretório de dados. O formato round-tripa todos os campos, mantendo
// campos opcionais ausentes quando não definidos.
type FileStore struct {
	dir     string
	mu      sync.Mutex
	latency Latency
}

// NewFileStore cria um FileStore, garantindo o diretório de dados
func NewFileStore(dir string, latency Latency) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}

	return &FileStore{dir: dir, latency: latency}, nil
}

func (s *FileStore) Read(_ context.Context, collection Collection) ([]json.RawMessage, error) {
	s.latency.SleepRead()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse collection %s: %w", collection, err)
	}

	return records, nil
}

func (s *FileStore) Write(_ context.Context, collection Collection, records []json.RawMessage) error {
	s.latency.SleepWrite()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cloneRecords(records))
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", collection, err)
	}

	// Escrita em arquivo temporário + rename para a troca ser atômica
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}

	return nil
}

func (s *FileStore) path(collection Collection) string {
	return filepath.Join(s.dir, string(collection)+".json")
}
