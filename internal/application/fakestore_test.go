package application_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

// memStore is an in-memory ConfigStore enforcing the same uniqueness rules as
// the SQL stores.
type memStore struct {
	mu   sync.Mutex
	rows map[string]model.ConfigRecord
	now  time.Time

	// beforeUpdate and beforeRemove run with the lock released, just before
	// the write. Tests use them to simulate concurrent writers.
	beforeUpdate func(id string)
	beforeRemove func(id string)
}

func newMemStore() *memStore {
	return &memStore{
		rows: make(map[string]model.ConfigRecord),
		now:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memStore) Create(_ context.Context, rec model.NewConfigRecord) (*model.ConfigRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	conflict := &model.ConflictError{ConfigType: rec.ConfigType, ConfigName: rec.ConfigName}
	if _, ok := m.rows[rec.ID]; ok {
		return nil, conflict
	}
	for _, r := range m.rows {
		if r.ConfigType == rec.ConfigType && r.ConfigName == rec.ConfigName {
			return nil, conflict
		}
	}

	now := m.tick()
	saved := model.ConfigRecord{
		ID:            rec.ID,
		ConfigType:    rec.ConfigType,
		ConfigName:    rec.ConfigName,
		DisplayName:   rec.DisplayName,
		DisplayNameEn: rec.DisplayNameEn,
		Value1:        rec.Value1,
		Value2:        rec.Value2,
		Value3:        rec.Value3,
		Active:        rec.IsActive(),
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     rec.CreatedBy,
		UpdatedBy:     rec.UpdatedBy,
	}
	m.rows[rec.ID] = saved
	return &saved, nil
}

func (m *memStore) FindAll(_ context.Context, configType model.ConfigType) ([]model.ConfigRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.ConfigRecord{}
	for _, r := range m.rows {
		if r.ConfigType == configType {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConfigName < out[j].ConfigName })
	return out, nil
}

func (m *memStore) FindByName(_ context.Context, configType model.ConfigType, configName string) (*model.ConfigRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.rows {
		if r.ConfigType == configType && r.ConfigName == configName {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindByID(_ context.Context, id string) (*model.ConfigRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memStore) Update(_ context.Context, id string, patch model.RecordPatch) (*model.ConfigRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if m.beforeUpdate != nil {
		m.beforeUpdate(id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}

	apply := func(dst **string, f model.Field[string]) {
		if f.IsSet() {
			*dst = f.Ptr()
		}
	}
	apply(&r.DisplayName, patch.DisplayName)
	apply(&r.DisplayNameEn, patch.DisplayNameEn)
	apply(&r.Value1, patch.Value1)
	apply(&r.Value2, patch.Value2)
	apply(&r.Value3, patch.Value3)
	if patch.Active != nil {
		r.Active = *patch.Active
	}
	r.UpdatedBy = patch.UpdatedBy
	r.UpdatedAt = m.tick()

	m.rows[id] = r
	return &r, nil
}

func (m *memStore) Remove(_ context.Context, id string) (bool, error) {
	if m.beforeRemove != nil {
		m.beforeRemove(id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

// drop deletes a row directly, bypassing the hooks.
func (m *memStore) drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
}
