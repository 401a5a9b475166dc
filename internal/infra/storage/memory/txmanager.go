package memory

import (
	"context"
)

type txKey struct{}

type txState struct {
	undo []func()
}

func txFromContext(ctx context.Context) (*txState, bool) {
	tx, ok := ctx.Value(txKey{}).(*txState)
	return tx, ok
}

// TxManager выполняет функции последовательно, по одной транзакции за раз.
// При ошибке изменения, сделанные внутри транзакции, откатываются.
type TxManager struct {
	store *Store
}

// Do выполняет fn в транзакции. Вложенный вызов переиспользует внешнюю транзакцию.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	tx := &txState{}

	defer func() {
		if p := recover(); p != nil {
			m.rollback(tx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		m.rollback(tx)
		return err
	}

	return nil
}

func (m *TxManager) rollback(tx *txState) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
}
