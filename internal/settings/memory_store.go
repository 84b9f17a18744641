package settings

import (
	"sort"
	"sync"
	"time"

	"hazelview_backend/internal/model"
)

// MemoryStore veritabanı yapılandırılmamış demo modu için ayar deposu
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[string]model.Setting
	nextID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:  make(map[string]model.Setting),
		nextID: 1,
	}
}

func (s *MemoryStore) SoldVisibility() Visibility {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if setting, ok := s.items[KeySoldVisibility]; ok {
		if v := Visibility(setting.Value); ValidVisibility(v) {
			return v
		}
	}
	return VisibilityShow
}

func (s *MemoryStore) SetSoldVisibility(v Visibility) error {
	_, err := s.Upsert(KeySoldVisibility, string(v), "Whether sold properties appear on the public site")
	return err
}

func (s *MemoryStore) All() ([]model.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Setting, 0, len(s.items))
	for _, setting := range s.items {
		items = append(items, setting)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, nil
}

func (s *MemoryStore) Upsert(key, value, description string) (model.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	setting, ok := s.items[key]
	if !ok {
		setting = model.Setting{Key: key, Description: description}
		setting.ID = s.nextID
		setting.CreatedAt = now
		s.nextID++
	}
	setting.Value = value
	if description != "" {
		setting.Description = description
	}
	setting.UpdatedAt = now
	s.items[key] = setting
	return setting, nil
}
