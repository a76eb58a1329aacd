package memory

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// TxRunner serializa las transacciones con el lock exclusivo del store y restaura
// la copia previa si fn falla o entra en pánico, de modo que ningún paso parcial queda visible.
type TxRunner struct {
	store *Store
}

func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snapshot := r.store.data.clone()
	defer func() {
		if p := recover(); p != nil {
			r.store.data = snapshot
			panic(p)
		}
	}()
	if err := fn(r.store.repos(true)); err != nil {
		r.store.data = snapshot
		return err
	}
	return nil
}
