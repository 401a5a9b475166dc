package sequence

import (
	"context"
	"sync"
)

// Generator потокобезопасный монотонный генератор идентификаторов
type Generator struct {
	mu      sync.Mutex
	counter int64
}

// New создает генератор, следующий выданный ID будет start+1
func New(start int64) *Generator {
	return &Generator{counter: start}
}

// NextID возвращает следующий идентификатор, строго больше всех предыдущих
func (g *Generator) NextID(_ context.Context) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++

	return g.counter, nil
}
