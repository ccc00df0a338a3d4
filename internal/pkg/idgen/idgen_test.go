package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/theta-arc/internal/pkg/idgen"
)

func TestSequentialCountsFromOne(t *testing.T) {
	g := idgen.NewSequential("")
	assert.Equal(t, "1", g.Generate())
	assert.Equal(t, "2", g.Generate())

	prefixed := idgen.NewSequential("trade")
	assert.Equal(t, "trade_1", prefixed.Generate())
}

func TestSequentialIsUniqueUnderConcurrency(t *testing.T) {
	g := idgen.NewSequential("")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(g.Generate(), true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()
	assert.Equal(t, "51", g.Generate())
}

func TestUUIDPrefix(t *testing.T) {
	g := idgen.NewUUID("bridge")
	a, b := g.Generate(), g.Generate()
	assert.True(t, strings.HasPrefix(a, "bridge_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimPrefix(a, "bridge_"), 36)
}
