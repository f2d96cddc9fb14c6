package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/validation"
)

type item struct {
	Code string `validate:"notblank"`
}

type sample struct {
	Name   string          `validate:"notblank"`
	Email  string          `validate:"omitempty,email"`
	Amount decimal.Decimal `validate:"positive"`
	Kind   string          `validate:"oneof=a b"`
	Items  []item          `validate:"dive"`
}

func TestStruct(t *testing.T) {
	valid := sample{
		Name:   "Obra Sky Tower",
		Amount: decimal.RequireFromString("0.01"),
		Kind:   "a",
	}

	type testCase struct {
		name     string
		mutate   func(s *sample)
		wantErr  bool
		contains string
	}

	tests := []testCase{
		{name: "Valid", mutate: func(*sample) {}},
		{name: "BlankName", mutate: func(s *sample) { s.Name = "   " }, wantErr: true, contains: "Name is required"},
		{name: "ZeroAmount", mutate: func(s *sample) { s.Amount = decimal.Zero }, wantErr: true, contains: "Amount must be greater than 0"},
		{name: "TinyAmount", mutate: func(s *sample) { s.Amount = decimal.New(1, -400) }},
		{name: "NegativeAmount", mutate: func(s *sample) { s.Amount = decimal.NewFromInt(-5) }, wantErr: true, contains: "Amount"},
		{name: "BadEmail", mutate: func(s *sample) { s.Email = "nope" }, wantErr: true, contains: "Email must be a valid email"},
		{name: "BadKind", mutate: func(s *sample) { s.Kind = "c" }, wantErr: true, contains: "Kind must be one of [a b]"},
		{
			name:     "NestedItem",
			mutate:   func(s *sample) { s.Items = []item{{Code: "x"}, {Code: ""}} },
			wantErr:  true,
			contains: "Items[1].Code is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := validation.Struct(s)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, validation.ErrValidation)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestErrorf(t *testing.T) {
	err := validation.Errorf("row %d: bad unit", 3)

	require.ErrorIs(t, err, validation.ErrValidation)
	assert.Equal(t, "validation failed: row 3: bad unit", err.Error())
}
