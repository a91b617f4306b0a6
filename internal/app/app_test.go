package app_test

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashrecover/internal/app"
	"hashrecover/internal/errors"
	"hashrecover/internal/log"
)

type fixture struct {
	dir     string
	dict    string
	hashes  string
	output  string
	digests []string
}

func newFixture(t *testing.T, girls []string, targets ...string) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:    dir,
		dict:   filepath.Join(dir, "dict"),
		hashes: filepath.Join(dir, "hashes.txt"),
		output: filepath.Join(dir, "out.txt"),
	}
	require.NoError(t, os.Mkdir(f.dict, 0o700))
	write(t, filepath.Join(f.dict, "girl_names.txt"), girls...)
	write(t, filepath.Join(f.dict, "boy_names.txt"), "bob")
	write(t, filepath.Join(f.dict, "word_list_moby_all_moby_words.flat.txt"), "zebra")

	for _, plain := range targets {
		sum := sha256.Sum256([]byte(plain))
		f.digests = append(f.digests, strings.ToUpper(hex.EncodeToString(sum[:])))
	}
	write(t, f.hashes, f.digests...)
	return f
}

func write(t *testing.T, path string, lines ...string) {
	t.Helper()
	data := ""
	for _, l := range lines {
		data += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func (f *fixture) config() app.Config {
	return app.Config{HashesPath: f.hashes, OutputPath: f.output, DictionaryDir: f.dict}
}

func crack(t *testing.T, cfg app.Config) (string, error) {
	t.Helper()
	w, err := app.NewWire(cfg, log.Discard())
	require.NoError(t, err)
	_, err = app.New(w).Crack()
	out, readErr := os.ReadFile(cfg.OutputPath)
	if readErr != nil {
		return "", err
	}
	return string(out), err
}

func TestCrack_roundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy", "sophie", "eve"}, "sophie")
	require.NoError(t, os.WriteFile(f.output, []byte("stale\r\n"), 0o600))

	out, err := crack(t, f.config())

	require.NoError(t, err)
	assert.Equal(t, f.digests[0]+" sophie\r\n", out)
}

func TestCrack_summary(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy", "sophie", "eve"}, "eve", "amy", "eve")
	w, err := app.NewWire(f.config(), log.Discard())
	require.NoError(t, err)

	sum, err := app.New(w).Crack()

	require.NoError(t, err)
	assert.Equal(t, 3, sum.Analysed)
	assert.Equal(t, uint64(3), sum.Solved)
	assert.Equal(t, uint64(3), sum.Attempts)

	out, err := os.ReadFile(f.output)
	require.NoError(t, err)
	assert.Equal(t,
		f.digests[1]+" amy\r\n"+f.digests[0]+" eve\r\n"+f.digests[0]+" eve\r\n",
		string(out),
	)
}

func TestCrack_blankHashLinesAreNotAnalysed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy"}, "amy")
	write(t, f.hashes, "", f.digests[0], "   ", "")
	w, err := app.NewWire(f.config(), log.Discard())
	require.NoError(t, err)

	sum, err := app.New(w).Crack()

	require.NoError(t, err)
	assert.Equal(t, 1, sum.Analysed)
	assert.Equal(t, uint64(1), sum.Solved)
}

func TestCrack_caseVariantStage(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy"}, "bOb42")

	out, err := crack(t, f.config())

	require.NoError(t, err)
	assert.Equal(t, f.digests[0]+" bOb42\r\n", out)
}

func TestCrack_lowerCaseHashFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy"}, "amy")
	write(t, f.hashes, strings.ToLower(f.digests[0]))

	out, err := crack(t, f.config())

	require.NoError(t, err)
	assert.Equal(t, f.digests[0]+" amy\r\n", out)
}

func TestCrack_malformedHashFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy"}, "amy")
	write(t, f.hashes, "xyz", f.digests[0])

	out, err := crack(t, f.config())
	var bad errors.MalformedDigestError
	require.True(t, errors.As(err, &bad))
	assert.Empty(t, out)

	cfg := f.config()
	cfg.SkipMalformed = true
	out, err = crack(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, f.digests[0]+" amy\r\n", out)
}

func TestCrack_missingWordListAborts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy"}, "zebra")
	require.NoError(t, os.Remove(filepath.Join(f.dict, "boy_names.txt")))

	out, err := crack(t, f.config())

	var re errors.ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, filepath.Join(f.dict, "boy_names.txt"), re.Path)
	assert.Empty(t, out)
}

func TestCrack_customListNames(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil, "kate")
	write(t, filepath.Join(f.dict, "names.txt"), "kate")

	cfg := f.config()
	cfg.Lists.GirlNames = "names.txt"
	out, err := crack(t, cfg)

	require.NoError(t, err)
	assert.Equal(t, f.digests[0]+" kate\r\n", out)
}

func TestNewWire_validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy"}, "amy")

	tests := map[string]func(*app.Config){
		"missing dictionary": func(c *app.Config) { c.DictionaryDir = filepath.Join(f.dir, "nope") },
		"dictionary is file": func(c *app.Config) { c.DictionaryDir = f.hashes },
		"missing hashes":     func(c *app.Config) { c.HashesPath = filepath.Join(f.dir, "nope.txt") },
		"output is dir":      func(c *app.Config) { c.OutputPath = f.dict },
	}
	for name, mutate := range tests {
		cfg := f.config()
		mutate(&cfg)
		_, err := app.NewWire(cfg, log.Discard())

		var re errors.ResourceError
		assert.True(t, errors.As(err, &re), name)
	}

	cfg := f.config()
	cfg.Algorithm = "md5"
	_, err := app.NewWire(cfg, log.Discard())
	var unavailable errors.AlgorithmUnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestNewWire_defaults(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []string{"amy"}, "amy")
	w, err := app.NewWire(f.config(), log.Discard())

	require.NoError(t, err)
	assert.Equal(t, "sha256", w.Config.Algorithm)
	assert.Equal(t, "girl_names.txt", w.Config.Lists.GirlNames)
	assert.Equal(t, f.output, w.Results.Path())
}
