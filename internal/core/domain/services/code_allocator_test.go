package services_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCodeAllocator_Generate(t *testing.T) {
	allocator := services.NewOrderCodeAllocator()
	now := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)

	t.Run("should produce NT-YYYYMMDD-XXXXXXXX codes", func(t *testing.T) {
		code := allocator.Generate(now)

		require.Regexp(t, regexp.MustCompile(`^NT-20260829-[0-9A-F]{8}$`), code)
	})

	t.Run("should use the UTC date of the allocation time", func(t *testing.T) {
		// 23:30 in UTC-5 is already the next day in UTC
		local := time.Date(2026, 8, 29, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

		code := allocator.Generate(local)

		assert.Contains(t, code, "NT-20260830-")
	})

	t.Run("should not repeat codes across many allocations", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1_000; i++ {
			code := allocator.Generate(now)
			_, dup := seen[code]
			require.False(t, dup, "duplicate code %s after %d allocations", code, i)
			seen[code] = struct{}{}
		}
	})
}
