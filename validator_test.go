package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestPrimitives() {
	s.Assert().True(Validate(NewNullSchema(), nil))
	s.Assert().False(Validate(NewNullSchema(), 0))
	s.Assert().True(Validate(NewBooleanSchema(), true))
	s.Assert().True(Validate(NewIntSchema(), int32(5)))
	s.Assert().False(Validate(NewIntSchema(), int64(1<<40)))
	s.Assert().True(Validate(NewLongSchema(), int64(1<<40)))
	s.Assert().True(Validate(NewFloatSchema(), float32(1.5)))
	s.Assert().True(Validate(NewDoubleSchema(), 1.5))
	s.Assert().True(Validate(NewStringSchema(), "hi"))
	s.Assert().False(Validate(NewStringSchema(), 5))
	s.Assert().True(Validate(NewBytesSchema(), []byte{1, 2}))
}

func (s *ValidatorTestSuite) TestArrayAndMap() {
	arr := NewArraySchema(NewIntSchema())
	s.Assert().True(Validate(arr, []any{int32(1), int32(2)}))
	s.Assert().False(Validate(arr, []any{"nope"}))

	m := NewMapSchema(NewStringSchema())
	s.Assert().True(Validate(m, map[string]any{"a": "b"}))
	s.Assert().False(Validate(m, map[string]any{"a": 1}))
}

func (s *ValidatorTestSuite) TestUnion() {
	u := NewUnionSchema(NewNullSchema(), NewStringSchema())
	s.Assert().True(Validate(u, nil))
	s.Assert().True(Validate(u, "hi"))
	s.Assert().False(Validate(u, 5))
	s.Assert().True(Validate(u, Union{Index: 1, Value: "hi"}))
	s.Assert().False(Validate(u, Union{Index: 1, Value: 5}))
}

func (s *ValidatorTestSuite) TestEnum() {
	e := NewEnumSchema("suit", "SPADES", "HEARTS")
	s.Assert().True(Validate(e, "SPADES"))
	s.Assert().False(Validate(e, "JOKER"))
	s.Assert().True(Validate(e, 1))
	s.Assert().False(Validate(e, 5))
}

func (s *ValidatorTestSuite) TestRecordMissingFieldWithNoDefault() {
	rec := NewRecordSchema("p", NewField("name", NewStringSchema()))
	s.Assert().False(Validate(rec, Record{}))
	s.Assert().True(Validate(rec, Record{"name": "alice"}))
}

func (s *ValidatorTestSuite) TestRecordMissingFieldWithDefault() {
	rec := NewRecordSchema("p", NewFieldWithDefault("age", NewIntSchema(), int32(0)))
	s.Assert().True(Validate(rec, Record{}))
}

func (s *ValidatorTestSuite) TestDecimalWithinPrecision() {
	d := NewDecimalSchema(3, 1) // max magnitude 999
	s.Assert().True(Validate(d, Decimal{Unscaled: 999, Scale: 1}))
	s.Assert().False(Validate(d, Decimal{Unscaled: 1000, Scale: 1}))
}

func (s *ValidatorTestSuite) TestFixedSize() {
	f := NewFixedSchema("md5", 4)
	s.Assert().True(Validate(f, Fixed{1, 2, 3, 4}))
	s.Assert().False(Validate(f, Fixed{1, 2, 3}))
}

func TestValidator(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func TestValidateNilDatumAgainstNonNull(t *testing.T) {
	assert.False(t, Validate(NewStringSchema(), nil))
}
