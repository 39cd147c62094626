package tmaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CartIDStore — где клиент хранит id своей корзины.
type CartIDStore interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, cartID string) error
	Clear(ctx context.Context) error
}

// MemoryStore — id корзины в памяти процесса.
type MemoryStore struct {
	mu sync.Mutex
	id string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Get(context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.id != "", nil
}

func (s *MemoryStore) Set(_ context.Context, cartID string) error {
	s.mu.Lock()
	s.id = strings.TrimSpace(cartID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.id = ""
	s.mu.Unlock()
	return nil
}

// FileStore — id корзины в JSON-файле {"cartId": "..."}.
// Отсутствующий файл — отсутствие корзины. Запись через временный файл и rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

type fileRecord struct {
	CartID string `json:"cartId"`
}

func (s *FileStore) Get(context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read cart id file: %w", err)
	}

	var rec fileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", false, fmt.Errorf("decode cart id file %s: %w", s.path, err)
	}
	return rec.CartID, rec.CartID != "", nil
}

func (s *FileStore) Set(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(fileRecord{CartID: strings.TrimSpace(cartID)})
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cart-id-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write cart id: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace cart id file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cart id file: %w", err)
	}
	return nil
}

// ServerStore — id корзины в серверной сессии (/api/session/cart), ключ — пользователь Telegram.
type ServerStore struct {
	client *Client
}

// NewServerStore — клиент должен быть создан с WithInitData.
func NewServerStore(c *Client) *ServerStore { return &ServerStore{client: c} }

func (s *ServerStore) Get(ctx context.Context) (string, bool, error) {
	return s.client.SessionCartID(ctx)
}

func (s *ServerStore) Set(ctx context.Context, cartID string) error {
	return s.client.PutSessionCartID(ctx, cartID)
}

func (s *ServerStore) Clear(ctx context.Context) error {
	return s.client.DeleteSessionCartID(ctx)
}
