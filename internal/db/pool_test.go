package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDBPoolParams_ConnString(t *testing.T) {
	testCases := []struct {
		name   string
		params NewDBPoolParams
		want   string
	}{
		{
			name: "default user, no password",
			params: NewDBPoolParams{
				DBHost: "localhost",
				DBPort: "5432",
				DBName: "fitplan",
			},
			want: "postgres://postgres@localhost:5432/fitplan",
		},
		{
			name: "user with password",
			params: NewDBPoolParams{
				DBHost:     "db",
				DBPort:     "6543",
				DBName:     "fitplan",
				DBUser:     "fit",
				DBPassword: "p@ss",
			},
			want: "postgres://fit:p%40ss@db:6543/fitplan",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.params.connString())
		})
	}
}
