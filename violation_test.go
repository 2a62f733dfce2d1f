package cpl_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/cpl"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code cpl.Code
		want string
	}{
		{cpl.CodeEmptyAccess, "CPL1001"},
		{cpl.CodeNullReference, "CPL1002"},
		{cpl.CodeDanglingAccess, "CPL1003"},
		{cpl.CodeCastMismatch, "CPL1004"},
		{cpl.CodeConstViolation, "CPL1005"},
		{cpl.CodeOutOfBounds, "CPL1006"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.code.String())
	}
}

func TestViolationError(t *testing.T) {
	v := &cpl.Violation{Code: cpl.CodeEmptyAccess, Message: "accessing an empty optional holder"}
	require.Equal(t, "violation CPL1001: accessing an empty optional holder", v.Error())
}

func TestAsViolation(t *testing.T) {
	v := &cpl.Violation{Code: cpl.CodeCastMismatch, Message: "wrong type"}

	got, ok := cpl.AsViolation(v)
	require.True(t, ok)
	require.Equal(t, cpl.CodeCastMismatch, got.Code)

	wrapped := fmt.Errorf("scenario failed: %w", v)
	got, ok = cpl.AsViolation(wrapped)
	require.True(t, ok)
	require.Equal(t, cpl.CodeCastMismatch, got.Code)

	_, ok = cpl.AsViolation(errors.New("plain"))
	require.False(t, ok)
}

func TestViolationCatalogGolden(t *testing.T) {
	samples := []cpl.Violation{
		{Code: cpl.CodeEmptyAccess, Message: "accessing an empty optional holder"},
		{Code: cpl.CodeNullReference, Message: "accessing a null reference"},
		{Code: cpl.CodeDanglingAccess, Message: "access of destroyed object#1"},
		{Code: cpl.CodeCastMismatch, Message: "static cast gave the wrong result"},
		{Code: cpl.CodeConstViolation, Message: "mutable access through a read-only borrow"},
		{Code: cpl.CodeOutOfBounds, Message: "bit index out of range"},
	}

	var sb strings.Builder
	for _, v := range samples {
		fmt.Fprintf(&sb, "%s\t%s\n", v.Code, v.Error())
	}

	g := goldie.New(t)
	g.Assert(t, "violation_catalog", []byte(sb.String()))
}
