package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/zipindex/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added tokens always test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		tokens := make([]string, 100)
		for i := range tokens {
			tokens[i] = fmt.Sprintf("token%d", i)
			f.Add(tokens[i])
		}

		for _, tok := range tokens {
			assert.True(t, f.Test(tok), "token %q must not be a false negative", tok)
		}
	})

	t.Run("unknown tokens mostly test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 100; i++ {
			f.Add(fmt.Sprintf("token%d", i))
		}

		falsePositives := 0
		for i := 0; i < 1000; i++ {
			if f.Test(fmt.Sprintf("absent%d", i)) {
				falsePositives++
			}
		}

		// 1% nominal rate; allow generous headroom to avoid flakes.
		assert.Less(t, falsePositives, 100)
	})

	t.Run("estimated count approximates additions", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 50; i++ {
			f.Add(fmt.Sprintf("token%d", i))
		}

		count := f.EstimatedCount()
		assert.InDelta(t, 50, float64(count), 10)
	})
}

func TestNewTokenFilter(t *testing.T) {
	t.Parallel()

	f := bloom.NewTokenFilter(10)
	f.Add("subject")

	assert.True(t, f.Test("subject"))
}
