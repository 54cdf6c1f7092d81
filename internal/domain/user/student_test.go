//go:build unit

package user_test

import (
	"testing"

	"campus-reservation/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentID(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "9桁OK", in: "202312345"},
		{name: "前後空白OK", in: " 202312345 "},
		{name: "8桁NG", in: "20231234", errIs: user.ErrInvalidStudentID},
		{name: "10桁NG", in: "2023123456", errIs: user.ErrInvalidStudentID},
		{name: "先頭ゼロNG", in: "012345678", errIs: user.ErrInvalidStudentID},
		{name: "数字以外NG", in: "20231234a", errIs: user.ErrInvalidStudentID},
		{name: "空NG", in: "", errIs: user.ErrInvalidStudentID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := user.ParseStudentID(tt.in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "202312345", id.String())
		})
	}
}

func TestBlocklist(t *testing.T) {
	b := user.NewBlocklist(202099999, 202288888)

	assert.True(t, b.Contains(202099999))
	assert.ErrorIs(t, b.Check(202288888), user.ErrBlockedStudentID)
	assert.NoError(t, b.Check(202312345))

	var empty user.Blocklist
	assert.False(t, empty.Contains(202099999))
}
