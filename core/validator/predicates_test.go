package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/core/rules"
	"github.com/dmitrymomot/formrules/core/validator"
)

// fakeForm is a static sibling-field view.
type fakeForm struct {
	values map[string]string
	passed map[string]bool
}

func (f fakeForm) Value(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f fakeForm) Passed(name string) bool { return f.passed[name] }

func run(t *testing.T, rule string, ctx validator.Context) bool {
	t.Helper()
	d, ok := validator.New().Resolve(rule)
	require.True(t, ok, "rule %q not registered", rule)
	ctx.Rule = rule
	passed, _ := d.Apply(ctx)
	return passed
}

type predicateCase struct {
	value  string
	params rules.Params
	want   bool
}

func runCases(t *testing.T, rule string, cases []predicateCase) {
	t.Helper()
	for _, tc := range cases {
		got := run(t, rule, validator.Context{Name: "f", Value: tc.value, Params: tc.params})
		assert.Equal(t, tc.want, got, "%s(%q, %v)", rule, tc.value, tc.params.Values())
	}
}

func TestPredicate_Required(t *testing.T) {
	t.Parallel()

	runCases(t, "required", []predicateCase{
		{value: "x", want: true},
		{value: "", want: false},
	})
	assert.True(t, run(t, "required", validator.Context{File: &validator.File{Name: "a.png"}}))
}

func TestPredicate_CharacterClasses(t *testing.T) {
	t.Parallel()

	runCases(t, "int", []predicateCase{
		{value: "42", want: true},
		{value: "-1", want: false},
		{value: "4.2", want: false},
	})
	runCases(t, "numeric", []predicateCase{
		{value: "42", want: true},
		{value: "4.25", want: true},
		{value: "4.255", want: false},
		{value: "abc", want: false},
	})
	runCases(t, "decimal", []predicateCase{
		{value: "4.2", want: true},
		{value: "4", want: false},
	})
	runCases(t, "alpha", []predicateCase{
		{value: "Hello", want: true},
		{value: "hello1", want: false},
	})
	runCases(t, "alpha_num", []predicateCase{
		{value: "user_123", want: true},
		{value: "user-123", want: false},
	})
}

func TestPredicate_Numeric(t *testing.T) {
	t.Parallel()

	runCases(t, "min", []predicateCase{
		{value: "5", params: rules.Single("5"), want: true},
		{value: "4.9", params: rules.Single("5"), want: false},
		{value: "0x10", params: rules.Single("16"), want: true},
		{value: "abc", params: rules.Single("0"), want: false},
		{value: "10", params: rules.Single("abc"), want: false},
	})
	runCases(t, "max", []predicateCase{
		{value: "10", params: rules.Single("10"), want: true},
		{value: "11", params: rules.Single("10"), want: false},
		{value: "1e1", params: rules.Single("10"), want: true},
		{value: "ten", params: rules.Single("10"), want: false},
	})
	runCases(t, "between", []predicateCase{
		{value: "5", params: rules.List("1", "10"), want: true},
		{value: "1", params: rules.List("1", "10"), want: false},
		{value: "10", params: rules.List("1", "10"), want: false},
		{value: "7", params: rules.List("1", "5", "10"), want: true},
		{value: "five", params: rules.List("1", "10"), want: false},
	})
}

func TestPredicate_Length(t *testing.T) {
	t.Parallel()

	runCases(t, "length", []predicateCase{
		{value: "123456", params: rules.Single("6"), want: true},
		{value: "12345", params: rules.Single("6"), want: false},
		{value: "😀", params: rules.Single("2"), want: true},
	})
	runCases(t, "minLength", []predicateCase{
		{value: "abcd", params: rules.Single("4"), want: true},
		{value: "abc", params: rules.Single("4"), want: false},
	})
	runCases(t, "maxLength", []predicateCase{
		{value: "abc", params: rules.Single("3"), want: true},
		{value: "abcd", params: rules.Single("3"), want: false},
	})
}

func TestPredicate_EmailAndURL(t *testing.T) {
	t.Parallel()

	runCases(t, "email", []predicateCase{
		{value: "user@example.com", want: true},
		{value: "first.last+tag@mail.example.co.uk", want: true},
		{value: "user@", want: false},
		{value: "not-an-email", want: false},
	})
	runCases(t, "url", []predicateCase{
		{value: "http://example.com", want: true},
		{value: "https://user:pw@example.com/path?q=1", want: true},
		{value: "example.com", want: false},
		{value: "ftp://example.com", want: false},
	})
}

func TestPredicate_InIsExactMembership(t *testing.T) {
	t.Parallel()

	runCases(t, "in", []predicateCase{
		{value: "2", params: rules.List("1", "2", "3"), want: true},
		{value: "21", params: rules.List("1", "2", "3"), want: false},
		{value: "Admin", params: rules.List("admin", "editor"), want: true},
		{value: "admin", params: rules.Single("admin"), want: true},
		{value: "superadmin", params: rules.List("admin", "editor"), want: false},
	})
	runCases(t, "not_in", []predicateCase{
		{value: "21", params: rules.List("1", "2"), want: true},
		{value: "BANNED", params: rules.List("banned", "suspended"), want: false},
	})
}

func TestPredicate_Equal(t *testing.T) {
	t.Parallel()

	runCases(t, "equal", []predicateCase{
		{value: "Yes", params: rules.Single("yes"), want: true},
		{value: "no", params: rules.Single("yes"), want: false},
	})
	runCases(t, "not_equal", []predicateCase{
		{value: "no", params: rules.Single("yes"), want: true},
		{value: "YES", params: rules.Single("yes"), want: false},
	})
}

func TestPredicate_Files(t *testing.T) {
	t.Parallel()

	png := &validator.File{Name: "a.png", Size: 1000, MIME: "image/png"}
	pdf := &validator.File{Name: "a.pdf", Size: 1000, MIME: "application/pdf"}

	assert.True(t, run(t, "image", validator.Context{File: png}))
	assert.False(t, run(t, "image", validator.Context{File: pdf}))
	assert.False(t, run(t, "image", validator.Context{}))

	assert.True(t, run(t, "size", validator.Context{File: png, Params: rules.Single("1001")}))
	assert.False(t, run(t, "size", validator.Context{File: png, Params: rules.Single("1000")}))
	assert.False(t, run(t, "size", validator.Context{Params: rules.Single("1000")}))

	assert.True(t, run(t, "mime", validator.Context{File: png, Params: rules.List("jpg", "png")}))
	assert.True(t, run(t, "mime", validator.Context{File: pdf, Params: rules.Single("pdf")}))
	assert.False(t, run(t, "mime", validator.Context{File: pdf, Params: rules.List("jpg", "png")}))
	assert.True(t, run(t, "mime", validator.Context{
		File:   &validator.File{MIME: "text/plain; charset=utf-8"},
		Params: rules.Single("txt"),
	}))
}

func TestPredicate_Relational(t *testing.T) {
	t.Parallel()

	form := fakeForm{
		values: map[string]string{"password": "Secret1", "coupon": "SAVE"},
		passed: map[string]bool{"coupon": true},
	}

	same := func(v string) validator.Context {
		return validator.Context{Value: v, Params: rules.Single("password"), Form: form}
	}
	assert.True(t, run(t, "same", same("Secret1")))
	assert.False(t, run(t, "same", same("secret1")))

	assert.True(t, run(t, "different", same("other")))
	assert.False(t, run(t, "different", same("SECRET1")))

	missing := validator.Context{Value: "x", Params: rules.Single("ghost"), Form: form}
	assert.True(t, run(t, "same", missing))
	assert.True(t, run(t, "different", missing))
	assert.True(t, run(t, "enable", missing))
	assert.True(t, run(t, "clear", missing))
	assert.True(t, run(t, "same", validator.Context{Value: "x", Params: rules.Single("password")}))

	assert.True(t, run(t, "enable", validator.Context{Value: "x", Params: rules.Single("coupon"), Form: form}))
	closed := fakeForm{values: form.values, passed: map[string]bool{}}
	assert.False(t, run(t, "enable", validator.Context{Value: "x", Params: rules.Single("coupon"), Form: closed}))
}

func TestPredicate_Dates(t *testing.T) {
	t.Parallel()

	runCases(t, "day", []predicateCase{
		{value: "1", want: true},
		{value: "31", want: true},
		{value: "32", want: false},
		{value: "0", want: false},
	})
	runCases(t, "month", []predicateCase{
		{value: "12", want: true},
		{value: "13", want: false},
	})
	runCases(t, "year", []predicateCase{
		{value: "1989", want: true},
		{value: "89", want: false},
	})
	runCases(t, "date", []predicateCase{
		{value: "1989-11-04", want: true},
		{value: "04-11-1989", want: true},
		{value: "4-11-89", want: true},
		{value: "not a date", want: false},
	})
}

func TestPredicate_ContainAndUUID(t *testing.T) {
	t.Parallel()

	runCases(t, "contain", []predicateCase{
		{value: "12 apples", params: rules.Single("int"), want: true},
		{value: "apples", params: rules.Single("int"), want: false},
		{value: "apples", params: rules.Single("alpha"), want: true},
	})
	runCases(t, "uuid", []predicateCase{
		{value: "f47ac10b-58cc-4372-a567-0e02b2c3d479", want: true},
		{value: "f47ac10b-58cc-4372-a567-0e02b2c3d479", params: rules.Single("4"), want: true},
		{value: "f47ac10b-58cc-4372-a567-0e02b2c3d479", params: rules.Single("1"), want: false},
		{value: "not-a-uuid", want: false},
	})
}

func TestToNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, validator.ToNumber(""))
	assert.Equal(t, 12.0, validator.ToNumber(" 12 "))
	assert.Equal(t, 16.0, validator.ToNumber("0x10"))
	assert.Equal(t, 1000.0, validator.ToNumber("1e3"))
	assert.Equal(t, 0.5, validator.ToNumber(".5"))
	assert.True(t, validator.ToNumber("Infinity") > 1e308)
	assert.True(t, math.IsNaN(validator.ToNumber("inf")))
	assert.True(t, math.IsNaN(validator.ToNumber("12abc")))
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, validator.Length("abc"))
	assert.Equal(t, 3, validator.Length("日本語"))
	assert.Equal(t, 2, validator.Length("😀"))
}

func TestMIMEType(t *testing.T) {
	t.Parallel()

	got, ok := validator.MIMEType(".JPG")
	assert.True(t, ok)
	assert.Equal(t, "image/jpeg", got)

	_, ok = validator.MIMEType("")
	assert.False(t, ok)
}
