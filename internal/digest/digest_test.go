package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"hashrecover/internal/digest"
	"hashrecover/internal/domain"
	"hashrecover/internal/errors"
)

func TestLookup_sha256KnownVectors(t *testing.T) {
	t.Parallel()

	fn, err := digest.Lookup("sha256")
	require.NoError(t, err)

	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		fn([]byte("hello")).String(),
	)
	assert.Equal(t,
		"BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD",
		fn([]byte("abc")).Hex(),
	)
}

func TestLookup_emptySelectsDefault(t *testing.T) {
	t.Parallel()

	def, err := digest.Lookup("")
	require.NoError(t, err)
	sha, err := digest.Lookup(digest.Default)
	require.NoError(t, err)

	assert.Equal(t, sha([]byte("cat")), def([]byte("cat")))
}

func TestLookup_wiresLibraries(t *testing.T) {
	t.Parallel()

	in := []byte("sophie1")
	cases := map[string]domain.Digest{
		"sha3-256":    sha3.Sum256(in),
		"blake2s-256": blake2s.Sum256(in),
		"blake3":      blake3.Sum256(in),
	}
	for name, want := range cases {
		fn, err := digest.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, fn(in), name)
	}
}

func TestLookup_algorithmsDiffer(t *testing.T) {
	t.Parallel()

	seen := map[domain.Digest]string{}
	for _, name := range digest.Names() {
		fn, err := digest.Lookup(name)
		require.NoError(t, err)
		sum := fn([]byte("dog"))
		if prev, dup := seen[sum]; dup {
			t.Fatalf("%s and %s produced the same digest", prev, name)
		}
		seen[sum] = name
	}
}

func TestLookup_unknown(t *testing.T) {
	t.Parallel()

	_, err := digest.Lookup("md5")
	require.Error(t, err)

	var unavailable errors.AlgorithmUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "md5", unavailable.Name)
}

func TestNames_sorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"blake2s-256", "blake3", "sha256", "sha3-256"}, digest.Names())
}
