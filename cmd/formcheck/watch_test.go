package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/core/formfile"
	"github.com/dmitrymomot/formrules/core/logger"
)

func TestValuesWatcher(t *testing.T) {
	def, err := formfile.Parse([]byte(testForm))
	require.NoError(t, err)
	form, err := def.Build()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "values.toml")
	write := func(content string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	w := &valuesWatcher{form: form, path: path, out: cmd, log: logger.Discard()}

	write("email = \"a@b.co\"\nage = 20\npassword = \"secret1\"\nconfirm = \"secret1\"\n")
	require.NoError(t, w.initial())

	dec := json.NewDecoder(&out)
	var r report
	require.NoError(t, dec.Decode(&r))
	assert.True(t, r.Result.FormValid)

	write("email = \"a@b.co\"\nage = 20\npassword = \"secret2\"\nconfirm = \"secret1\"\n")
	w.reload()

	r = report{}
	require.NoError(t, dec.Decode(&r))
	assert.Equal(t, []string{"password"}, r.Fields)
	assert.Equal(t, []string{"confirm"}, r.Result.Cascade.Clear)
	assert.False(t, r.Result.FormValid)

	out.Reset()
	w.reload()
	assert.Empty(t, out.String(), "unchanged file prints nothing")

	assert.Equal(t, formrules.TriggerSubmit, form.ValidateOn())
}
