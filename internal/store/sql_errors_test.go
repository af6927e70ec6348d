package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("wrap: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), want: NotNullViolation},
		{name: "syntax", err: pgError(pgerrcode.SyntaxError), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	sqliteErr := func(code sqlite3.ErrNoExtended) error {
		return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: code}
	}

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: sqliteErr(sqlite3.ErrConstraintUnique), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("wrap: %w", sqliteErr(sqlite3.ErrConstraintUnique)), want: UniqueViolation},
		{name: "foreign key", err: sqliteErr(sqlite3.ErrConstraintForeignKey), want: ForeignKeyViolation},
		{name: "not null", err: sqliteErr(sqlite3.ErrConstraintNotNull), want: NotNullViolation},
		{name: "check", err: sqliteErr(sqlite3.ErrConstraintCheck), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
