package formfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/core/formfile"
)

const signupForm = `
validate_on = "blur"
disable_submit = true

[rules]
email = "required|email"
age = "int|min:18"
password = "required|minLength:6"
confirm = "required|same:password"

[display]
confirm = "password confirmation"

[messages.age]
min = "You must be at least :parameter"

[values]
email = "user@example.com"
age = 16
password = "secret1"
confirm = "secret1"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "form.toml", signupForm)

	def, err := formfile.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "blur", def.ValidateOn)
	require.NotNil(t, def.DisableSubmit)
	assert.True(t, *def.DisableSubmit)
	assert.Nil(t, def.Strict)
	assert.Equal(t, "required|same:password", def.Rules["confirm"])

	values, err := def.FieldValues()
	require.NoError(t, err)
	assert.Equal(t, "16", values["age"])

	form, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, formrules.TriggerBlur, form.ValidateOn())

	res := form.Submit(formrules.Values(values))
	assert.False(t, res.FormValid)
	assert.False(t, res.SubmitEnabled)
	assert.Equal(t, "You must be at least 18", res.Outcomes["age"].Message)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := formfile.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = formfile.Load(writeFile(t, dir, "empty.toml", `validate_on = "blur"`))
	assert.ErrorIs(t, err, formfile.ErrNoRules)

	_, err = formfile.Load(writeFile(t, dir, "broken.toml", `[rules`))
	assert.Error(t, err)

	def, err := formfile.Parse([]byte("validate_on = \"hover\"\n[rules]\na = \"required\"\n"))
	require.NoError(t, err)
	_, err = def.Build()
	assert.ErrorIs(t, err, formrules.ErrInvalidTrigger)
}

func TestLoadValues(t *testing.T) {
	dir := t.TempDir()

	flat, err := formfile.LoadValues(writeFile(t, dir, "flat.toml", "name = \"Ada\"\nage = 36\nprice = 9.5\nagree = true\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Ada", "age": "36", "price": "9.5", "agree": "true"}, flat)

	table, err := formfile.LoadValues(writeFile(t, dir, "table.toml", "[values]\nname = \"Grace\"\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Grace"}, table)

	_, err = formfile.LoadValues(writeFile(t, dir, "nested.toml", "[address]\ncity = \"Paris\"\n"))
	assert.ErrorIs(t, err, formfile.ErrInvalidValue)
}

func TestChanged(t *testing.T) {
	prev := map[string]string{"a": "1", "b": "2", "c": "3"}
	next := map[string]string{"a": "1", "b": "20", "d": "4"}

	assert.Equal(t, []string{"b", "c", "d"}, formfile.Changed(prev, next))
	assert.Empty(t, formfile.Changed(prev, prev))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "values.toml", "a = \"1\"\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- formfile.Watch(ctx, path, func() { changed <- struct{}{} })
	}()

	// Keep writing until the watcher is registered and reports a change.
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	writeFile(t, dir, "other.toml", "ignored = true\n")
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("a = \"2\"\n"), 0o644))
		case <-ctx.Done():
			t.Fatal("no change event received")
		}
	}

	cancel()
	assert.NoError(t, <-done)
}
