package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential(idgen.PrefixEvent)
	assert.Equal(t, "evt_1", gen.Generate())
	assert.Equal(t, "evt_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestSequentialGeneratorIsUniqueUnderConcurrency(t *testing.T) {
	gen := idgen.NewSequential("imp")

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID(idgen.PrefixCharacter).Generate()
	require.True(t, strings.HasPrefix(id, "char_"))
	assert.Len(t, strings.TrimPrefix(id, "char_"), 36)

	assert.NotEqual(t, idgen.NewUUID("").Generate(), idgen.NewUUID("").Generate())
}
