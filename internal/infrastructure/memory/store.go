// Package memory implementa los repositorios sobre mapas en memoria. Se usa como doble de pruebas
// y como backend de desarrollo (STORAGE_DRIVER=memory); los datos se pierden al reiniciar.
package memory

import (
	"maps"
	"sync"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/reference"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

type state struct {
	users     map[string]entity.User
	goats     map[string]entity.Goat
	weights   map[string]entity.WeightRecord
	breeding  map[string]entity.BreedingRecord
	health    map[string]entity.HealthRecord
	expenses  map[string]entity.Expense
	sales     map[string]entity.SaleRecord
	inventory map[string]entity.InventoryItem
	counters  map[reference.Kind]int64
}

func newState() *state {
	return &state{
		users:     make(map[string]entity.User),
		goats:     make(map[string]entity.Goat),
		weights:   make(map[string]entity.WeightRecord),
		breeding:  make(map[string]entity.BreedingRecord),
		health:    make(map[string]entity.HealthRecord),
		expenses:  make(map[string]entity.Expense),
		sales:     make(map[string]entity.SaleRecord),
		inventory: make(map[string]entity.InventoryItem),
		counters:  make(map[reference.Kind]int64),
	}
}

// clone copia superficial de cada mapa; las entidades se guardan por valor.
func (s *state) clone() *state {
	return &state{
		users:     maps.Clone(s.users),
		goats:     maps.Clone(s.goats),
		weights:   maps.Clone(s.weights),
		breeding:  maps.Clone(s.breeding),
		health:    maps.Clone(s.health),
		expenses:  maps.Clone(s.expenses),
		sales:     maps.Clone(s.sales),
		inventory: maps.Clone(s.inventory),
		counters:  maps.Clone(s.counters),
	}
}

func (s *state) goatRef(id string) *entity.GoatRef {
	g, ok := s.goats[id]
	if !ok {
		return nil
	}
	return &entity.GoatRef{ID: g.ID, TagNo: g.TagNo, Name: g.Name, Breed: g.Breed}
}

// Store estado compartido por todos los repositorios de memoria.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

// binding enlaza un repositorio al store. Dentro de una transacción el TxRunner ya tiene el lock
// exclusivo, así que los métodos no vuelven a bloquear.
type binding struct {
	s    *Store
	inTx bool
}

func (b binding) read(fn func(st *state) error) error {
	if !b.inTx {
		b.s.mu.RLock()
		defer b.s.mu.RUnlock()
	}
	return fn(b.s.data)
}

func (b binding) write(fn func(st *state) error) error {
	if !b.inTx {
		b.s.mu.Lock()
		defer b.s.mu.Unlock()
	}
	return fn(b.s.data)
}

func (s *Store) repos(inTx bool) repository.Repos {
	b := binding{s: s, inTx: inTx}
	return repository.Repos{
		Counters:  &CounterRepo{b},
		Goats:     &GoatRepo{b},
		Weights:   &WeightRecordRepo{b},
		Breeding:  &BreedingRepo{b},
		Health:    &HealthRepo{b},
		Expenses:  &ExpenseRepo{b},
		Sales:     &SaleRepo{b},
		Inventory: &InventoryRepo{b},
	}
}

// Repos repositorios en autocommit (cada método toma su propio lock).
func (s *Store) Repos() repository.Repos {
	return s.repos(false)
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{binding{s: s}}
}

func (s *Store) Dashboard() *DashboardRepo {
	return &DashboardRepo{binding{s: s}}
}
