package confdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		raw  string
		want EntryType
	}{
		{"true", TypeBoolean},
		{"false", TypeBoolean},
		{"  true ", TypeBoolean},
		{"True", TypeString},
		{"FALSE", TypeString},
		{"null", TypeNull},
		{"NULL", TypeString},
		{"42", TypeNumber},
		{"42.5", TypeNumber},
		{"-7", TypeNumber},
		{"+3", TypeNumber},
		{".5", TypeNumber},
		{"5.", TypeNumber},
		{"1e3", TypeNumber},
		{"2.5E-4", TypeNumber},
		{"42abc", TypeString},
		{"12 34", TypeString},
		{"0x10", TypeString},
		{"NaN", TypeString},
		{"Inf", TypeString},
		{"1e999", TypeString},
		{"-", TypeString},
		{"", TypeString},
		{"   ", TypeString},
		{"Survival", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.raw))
		})
	}
}

func TestInferNode(t *testing.T) {
	assert.Equal(t, Bool(true), InferNode("true"))
	assert.Equal(t, Bool(false), InferNode(" false"))
	assert.Equal(t, Null{}, InferNode("null"))
	assert.Equal(t, Int(42), InferNode("42"))
	assert.Equal(t, Float(42.5), InferNode("42.5"))
	assert.Equal(t, String("42abc"), InferNode("42abc"))
	assert.Equal(t, String(""), InferNode(""))
	// Strings keep surrounding whitespace.
	assert.Equal(t, String(" hello "), InferNode(" hello "))
}

func TestTypeOfAndScalarText(t *testing.T) {
	tests := []struct {
		node     Node
		wantType EntryType
		wantText string
	}{
		{String("hi"), TypeString, "hi"},
		{Int(20), TypeNumber, "20"},
		{Float(0.25), TypeNumber, "0.25"},
		{Bool(true), TypeBoolean, "true"},
		{Bool(false), TypeBoolean, "false"},
		{Null{}, TypeNull, "null"},
		{NewMap(), TypeObject, ""},
	}

	for _, tt := range tests {
		t.Run(tt.wantText, func(t *testing.T) {
			assert.Equal(t, tt.wantType, TypeOf(tt.node))
			assert.Equal(t, tt.wantText, ScalarText(tt.node))
		})
	}
}

func TestParseEntryType(t *testing.T) {
	assert.Equal(t, TypeBoolean, ParseEntryType("Bool"))
	assert.Equal(t, TypeNumber, ParseEntryType("int"))
	assert.Equal(t, TypeString, ParseEntryType("text"))
	assert.Equal(t, TypeObject, ParseEntryType("map"))
	assert.Equal(t, EntryType(""), ParseEntryType("list"))
	assert.False(t, EntryType("list").IsValid())
	assert.True(t, TypeNull.IsValid())
}
