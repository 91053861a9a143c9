package save_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/save"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

func TestParseSemVer_StrictFormat(t *testing.T) {
	tests := []struct {
		raw  string
		want save.SemVer
	}{
		{"1.0.0", save.SemVer{Major: 1, Minor: 0, Patch: 0}},
		{"1.2.0", save.SemVer{Major: 1, Minor: 2, Patch: 0}},
		{"10.20.30", save.SemVer{Major: 10, Minor: 20, Patch: 30}},
		{"0.0.1", save.SemVer{Major: 0, Minor: 0, Patch: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := save.ParseSemVer(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.raw, got.String())
		})
	}
}

func TestParseSemVer_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "1.2", "1.2.3.4", "a.b.c", "1.2.x", "1..3", "v1.2.3", "1.2.-3", "1.2.3 "} {
		t.Run(raw, func(t *testing.T) {
			_, err := save.ParseSemVer(raw)
			require.Error(t, err)

			var malformed *save.ErrMalformedVersion
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, raw, malformed.Raw)

			var versionErr *shared.VersionError
			assert.ErrorAs(t, err, &versionErr)
		})
	}
}

func TestSemVer_MajorGatesCompatibility(t *testing.T) {
	base := save.MustParseSemVer("1.0.0")

	assert.True(t, base.IsCompatibleWith(save.MustParseSemVer("1.9.9")))
	assert.True(t, save.MustParseSemVer("1.9.9").IsCompatibleWith(base))
	assert.False(t, base.IsCompatibleWith(save.MustParseSemVer("2.0.0")))
	assert.False(t, save.MustParseSemVer("0.9.0").IsCompatibleWith(base))
}

func TestCheckCompatibility_Directional(t *testing.T) {
	current := save.MustParseSemVer(save.CurrentVersion)

	require.NoError(t, save.CheckCompatibility(save.CurrentVersion))

	var tooNew *save.ErrSnapshotTooNew
	err := save.CheckCompatibility("99.0.0")
	require.ErrorAs(t, err, &tooNew)
	assert.Equal(t, current, tooNew.Engine)
	assert.Equal(t, 99, tooNew.Snapshot.Major)

	var tooOld *save.ErrSnapshotTooOld
	err = save.CheckCompatibility("0.9.0")
	require.ErrorAs(t, err, &tooOld)
	assert.Equal(t, current, tooOld.Engine)
}
