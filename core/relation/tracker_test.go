package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/core/relation"
)

func newTable() *relation.Table {
	table := relation.NewTable()
	table.AddSame("password", "confirm")
	table.AddSame("password", "confirm")
	table.AddDifferent("old_password", "password")
	table.AddEnable("coupon", "coupon_code")
	table.AddClear("username", "nickname")
	return table
}

func TestTracker_OnFieldChanged(t *testing.T) {
	t.Parallel()

	tracker := relation.NewTracker(newTable())

	tests := []struct {
		name   string
		field  string
		passed bool
		want   relation.Cascade
	}{
		{
			name:   "same target passed clears mirror",
			field:  "password",
			passed: true,
			want:   relation.Cascade{Clear: []string{"confirm"}},
		},
		{
			name:   "same target failed clears nothing",
			field:  "password",
			passed: false,
			want:   relation.Cascade{},
		},
		{
			name:   "different target passed clears dependent",
			field:  "old_password",
			passed: true,
			want:   relation.Cascade{Clear: []string{"password"}},
		},
		{
			name:   "gate source passed enables gated field",
			field:  "coupon",
			passed: true,
			want:   relation.Cascade{Enable: []string{"coupon_code"}},
		},
		{
			name:   "gate source failed disables gated field",
			field:  "coupon",
			passed: false,
			want:   relation.Cascade{Disable: []string{"coupon_code"}},
		},
		{
			name:   "clear source passed lists its target",
			field:  "username",
			passed: true,
			want:   relation.Cascade{Clear: []string{"nickname"}},
		},
		{
			name:   "clear source failed lists nothing",
			field:  "username",
			passed: false,
			want:   relation.Cascade{},
		},
		{
			name:   "unrelated field",
			field:  "email",
			passed: true,
			want:   relation.Cascade{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tracker.OnFieldChanged(tt.field, tt.passed)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want.Clear)+len(tt.want.Enable)+len(tt.want.Disable) == 0, got.IsEmpty())
		})
	}
}

func TestTracker_NilTable(t *testing.T) {
	t.Parallel()

	tracker := relation.NewTracker(nil)
	assert.True(t, tracker.OnFieldChanged("anything", true).IsEmpty())
	assert.Empty(t, tracker.Dependents("anything"))
	assert.Empty(t, tracker.Targets("anything"))
}

func TestTracker_Dependents(t *testing.T) {
	t.Parallel()

	table := newTable()
	table.AddDifferent("password", "hint")
	tracker := relation.NewTracker(table)

	assert.Equal(t, []string{"confirm", "hint"}, tracker.Dependents("password"))
	assert.Equal(t, []string{"nickname"}, tracker.Targets("username"))
	assert.Empty(t, tracker.Dependents("username"))
	assert.Equal(t, []string{"coupon"}, table.Gates("coupon_code"))
}

func TestCascade_Merge(t *testing.T) {
	t.Parallel()

	c := relation.Cascade{Clear: []string{"a"}, Enable: []string{"b"}}
	c = c.Merge(relation.Cascade{Clear: []string{"a", "c"}, Disable: []string{"b"}})

	assert.Equal(t, []string{"a", "c"}, c.Clear)
	assert.Empty(t, c.Enable)
	assert.Equal(t, []string{"b"}, c.Disable)

	c = c.Merge(relation.Cascade{Enable: []string{"b"}})
	assert.Equal(t, []string{"b"}, c.Enable)
	assert.Empty(t, c.Disable)
}
