package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestApply_Set(t *testing.T) {
	t.Parallel()

	got, err := Apply(strp("old"), Operation{Op: Set, Value: "new"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", *got)

	got, err = Apply(nil, Operation{Op: Set, Value: "new"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", *got)
}

func TestApply_Unset(t *testing.T) {
	t.Parallel()

	got, err := Apply(strp("old"), Operation{Op: Unset})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApply_Prepend(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current *string
		op      Operation
		want    string
	}{
		{"onto existing", strp("/usr/bin"), Operation{Op: Prepend, Value: "/opt/bin", Separator: ":"}, "/opt/bin:/usr/bin"},
		{"onto unset", nil, Operation{Op: Prepend, Value: "/opt/bin", Separator: ":"}, "/opt/bin"},
		{"onto empty string", strp(""), Operation{Op: Prepend, Value: "/opt/bin", Separator: ":"}, "/opt/bin"},
		{"custom separator", strp("a"), Operation{Op: Prepend, Value: "b", Separator: ","}, "b,a"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Apply(tc.current, tc.op)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestApply_Append(t *testing.T) {
	t.Parallel()

	got, err := Apply(strp("/usr/bin"), Operation{Op: Append, Value: "/opt/bin", Separator: ":"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "/usr/bin:/opt/bin", *got)

	got, err = Apply(nil, Operation{Op: Append, Value: "/opt/bin", Separator: ":"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "/opt/bin", *got)
}

func TestApply_Remove(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current *string
		op      Operation
		want    *string
	}{
		{"removes middle element", strp("/a:/b:/c"), Operation{Op: Remove, Value: "/b", Separator: ":"}, strp("/a:/c")},
		{"removes only element", strp("/a"), Operation{Op: Remove, Value: "/a", Separator: ":"}, nil},
		{"removes all matching duplicates", strp("/a:/b:/a"), Operation{Op: Remove, Value: "/a", Separator: ":"}, strp("/b")},
		{"no match leaves value untouched", strp("/a:/b"), Operation{Op: Remove, Value: "/z", Separator: ":"}, strp("/a:/b")},
		{"on unset is a no-op", nil, Operation{Op: Remove, Value: "/a", Separator: ":"}, nil},
		{"collapses empty segments", strp("/a::/b"), Operation{Op: Remove, Value: "/z", Separator: ":"}, strp("/a:/b")},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Apply(tc.current, tc.op)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func TestApply_UnrecognizedTag(t *testing.T) {
	t.Parallel()

	_, err := Apply(nil, Operation{Op: Tag("bogus")})
	assert.Error(t, err)
}

func TestApplyPipeline(t *testing.T) {
	t.Parallel()

	ops := []Operation{
		{Op: Set, Value: "/usr/bin"},
		{Op: Prepend, Value: "/opt/bin", Separator: ":"},
		{Op: Append, Value: "/usr/local/bin", Separator: ":"},
		{Op: Remove, Value: "/usr/bin", Separator: ":"},
	}
	got, err := ApplyPipeline(nil, ops)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "/opt/bin:/usr/local/bin", *got)
}

func TestApplyPipeline_Empty(t *testing.T) {
	t.Parallel()

	got, err := ApplyPipeline(strp("unchanged"), nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "unchanged", *got)
}

func TestApplyPipeline_PropagatesStepError(t *testing.T) {
	t.Parallel()

	_, err := ApplyPipeline(nil, []Operation{{Op: Tag("bogus")}})
	assert.ErrorContains(t, err, "pipeline step 0")
}
