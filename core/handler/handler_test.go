package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/core/handler"
	"github.com/dmitrymomot/formrules/core/rules"
	"github.com/dmitrymomot/formrules/core/validator"
)

func signup(*http.Request) (*formrules.Form, error) {
	return formrules.New(rules.Raw{
		"email":    "required|email",
		"password": "required|minLength:8",
	})
}

func post(t *testing.T, h http.Handler, target, contentType, body string) (*httptest.ResponseRecorder, formrules.Result) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var res formrules.Result
	if rec.Code == http.StatusOK || rec.Code == http.StatusUnprocessableEntity {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestValidate(t *testing.T) {
	h := handler.Validate(signup)

	t.Run("valid form", func(t *testing.T) {
		rec, res := post(t, h, "/", "application/x-www-form-urlencoded", "email=a%40b.co&password=correcthorse")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.True(t, res.FormValid)
	})

	t.Run("invalid form", func(t *testing.T) {
		rec, res := post(t, h, "/", "application/json", `{"email":"nope","password":"short"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, res.FormValid)
		assert.Equal(t, "This is not a valid email address", res.Outcomes["email"].Message)
		assert.Equal(t, "minLength", res.Outcomes["password"].Rule)
	})

	t.Run("single field", func(t *testing.T) {
		rec, res := post(t, h, "/?field=email", "application/json", `{"email":"a@b.co"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "password never validated")
		assert.Len(t, res.Outcomes, 1)
		assert.True(t, res.Outcomes["email"].OK)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		rec, _ := post(t, h, "/", "text/plain", "email")
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, _ := post(t, h, "/", "application/json", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestValidate_QuerySelectorIsNotAValue(t *testing.T) {
	h := handler.Validate(func(*http.Request) (*formrules.Form, error) {
		return formrules.New(rules.Raw{"email": "required|email|no_selector"},
			formrules.WithCustomRules(map[string]validator.Predicate{
				"no_selector": func(ctx validator.Context) bool {
					_, ok := ctx.Form.Value(handler.FieldParam)
					return !ok
				},
			}),
		)
	})

	req := httptest.NewRequest(http.MethodGet, "/?field=email&email=a%40b.co", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var res formrules.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Outcomes, 1)
	assert.True(t, res.Outcomes["email"].OK)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidate_Options(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		h := handler.Validate(signup, handler.WithInvalidStatus(http.StatusOK))
		rec, res := post(t, h, "/", "application/json", `{}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, res.FormValid)
	})

	t.Run("factory error", func(t *testing.T) {
		h := handler.Validate(func(*http.Request) (*formrules.Form, error) {
			return nil, errors.New("boom")
		})
		rec, _ := post(t, h, "/", "application/json", `{}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}
