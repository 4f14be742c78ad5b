package sfv_test

import (
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-sfv/internal/fixture"
	"github.com/stretchr/testify/require"
)

// TestConformance runs every fixture file under testdata. The fixture
// format is described in the fixture package; each case either names the
// expected structure or is marked as a required or permitted failure.
func TestConformance(t *testing.T) {
	files, err := filepath.Glob("testdata/*.jsonc")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no fixture files found")

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			cases, err := fixture.Load(file)
			require.NoError(t, err)
			require.NotEmpty(t, cases)

			for i := range cases {
				c := &cases[i]
				t.Run(c.Name, func(t *testing.T) {
					require.NoError(t, c.Verify())
				})
			}
		})
	}
}
