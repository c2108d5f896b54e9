package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "violation d'unicité directe",
			err:  &pgconn.PgError{Code: "23505"},
			want: true,
		},
		{
			name: "violation d'unicité enveloppée",
			err:  fmt.Errorf("erreur insertion: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "autre erreur PostgreSQL",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "erreur quelconque",
			err:  errors.New("connexion perdue"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, attendu %v", got, tt.want)
			}
		})
	}
}
