package cli

import (
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/winterwell/wwutils/pkg/cliconfig"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"wwutils": Execute,
	})
}

func TestScripts(t *testing.T) {
	t.Parallel()

	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
			return nil
		},
	})
}

func TestMapRows(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a\t1", "b\t"}, mapRows(map[string]string{"b": "", "a": "1"}))
	assert.Empty(t, mapRows(nil))
}

func TestFormatSource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(flag)", formatSource(cliconfig.SourceFlag))
	assert.Equal(t, "(local config)", formatSource(cliconfig.SourceLocal))
	assert.Equal(t, "", formatSource("elsewhere"))
}
