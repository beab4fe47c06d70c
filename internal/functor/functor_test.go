package functor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	testCases := []struct {
		role Role
		want string
	}{
		{RoleClean, "clean_item01_vanilla"},
		{RoleBuild, "item01_vanilla"},
		{RoleAnalyze, "analyse_item01_vanilla"},
		{RoleRun, "runner_item01_vanilla"},
	}

	for _, tc := range testCases {
		t.Run(tc.role.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Name(tc.role, "item01", "vanilla"))
			assert.Equal(t, tc.want+".py", FileName(tc.role, "item01", "vanilla"))
		})
	}
}

func TestJoinFile(t *testing.T) {
	assert.Equal(t, "/a/b/item_f.py", JoinFile("/a/b", "item_f"))
}

func TestParseRole(t *testing.T) {
	testCases := []struct {
		in        string
		want      Role
		expectErr bool
	}{
		{in: "build", want: RoleBuild},
		{in: "Builder", want: RoleBuild},
		{in: "clean", want: RoleClean},
		{in: "cleaner", want: RoleClean},
		{in: "run", want: RoleRun},
		{in: " runner ", want: RoleRun},
		{in: "analyze", want: RoleAnalyze},
		{in: "analyse", want: RoleAnalyze},
		{in: "analyzer", want: RoleAnalyze},
		{in: "submit", expectErr: true},
		{in: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRole(tc.in)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRole_String(t *testing.T) {
	for _, role := range Roles {
		parsed, err := ParseRole(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
	assert.Equal(t, "Role(42)", Role(42).String())
}

func TestSet_Get(t *testing.T) {
	s := Set{
		Build:   Functor{Role: RoleBuild, Name: "item01_vanilla"},
		Clean:   Functor{Role: RoleClean, Name: "clean_item01_vanilla"},
		Run:     Functor{Role: RoleRun, Name: "runner_item01_vanilla"},
		Analyze: Functor{Role: RoleAnalyze, Name: "analyse_item01_vanilla"},
	}

	for _, role := range Roles {
		t.Run(role.String(), func(t *testing.T) {
			got := s.Get(role)
			assert.Equal(t, role, got.Role)
			assert.Equal(t, Name(role, "item01", "vanilla"), got.Name)
		})
	}

	assert.Equal(t, Functor{}, s.Get(Role(42)), "unknown roles yield the zero functor")
}
