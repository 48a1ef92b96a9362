package avro

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EncoderTestSuite struct {
	suite.Suite
}

func (s *EncoderTestSuite) TestNewEncoderRejectsNilArgs() {
	stream := NewMemoryStream(nil)
	_, err := NewEncoder(nil, NewIntSchema())
	s.Assert().ErrorIs(err, ErrNilStream)

	_, err = NewEncoder(stream, nil)
	s.Assert().ErrorIs(err, ErrNilSchema)
}

func (s *EncoderTestSuite) TestWriteRejectsNonConformingDatum() {
	stream := NewMemoryStream(nil)
	enc, err := NewEncoder(stream, NewIntSchema())
	s.Require().NoError(err)

	err = enc.Write("not an int")
	s.Assert().ErrorIs(err, ErrDatumTypeMismatch)
}

func (s *EncoderTestSuite) TestWriteLatchesFirstError() {
	stream := NewMemoryStream(nil)
	enc, err := NewEncoder(stream, NewIntSchema())
	s.Require().NoError(err)

	err1 := enc.Write("bad")
	s.Require().Error(err1)
	err2 := enc.Write(int32(5))
	s.Assert().Equal(err1, err2)
	s.Assert().Empty(stream.Bytes())
}

func (s *EncoderTestSuite) TestWriteRecordFillsMissingFieldFromDefault() {
	schema := NewRecordSchema("p",
		NewField("name", NewStringSchema()),
		NewFieldWithDefault("age", NewIntSchema(), int32(18)),
	)
	stream := NewMemoryStream(nil)
	enc, err := NewEncoder(stream, schema)
	s.Require().NoError(err)
	s.Require().NoError(enc.Write(Record{"name": "alice"}))

	stream.Reset()
	dec, err := NewDecoder(stream, schema, nil)
	s.Require().NoError(err)
	got, err := dec.Read()
	s.Require().NoError(err)
	s.Assert().Equal(Record{"name": "alice", "age": int32(18)}, got)
}

func (s *EncoderTestSuite) TestWriteUnionPicksFirstAcceptingBranch() {
	schema := NewUnionSchema(NewNullSchema(), NewIntSchema(), NewStringSchema())
	stream := NewMemoryStream(nil)
	enc, err := NewEncoder(stream, schema)
	s.Require().NoError(err)
	s.Require().NoError(enc.Write(int32(7)))

	stream.Reset()
	dec, err := NewDecoder(stream, schema, nil)
	s.Require().NoError(err)
	got, err := dec.Read()
	s.Require().NoError(err)
	s.Assert().Equal(Union{Index: 1, Value: int32(7)}, got)
}

func (s *EncoderTestSuite) TestWriteUnionRejectsNoMatchingBranch() {
	schema := NewUnionSchema(NewNullSchema(), NewStringSchema())
	stream := NewMemoryStream(nil)
	enc, err := NewEncoder(stream, schema)
	s.Require().NoError(err)
	// Validate() fails first, surfacing as ErrDatumTypeMismatch rather than
	// ErrNoMatchingBranch, since an unacceptable union datum never reaches
	// the write path at all.
	err = enc.Write(3.14)
	s.Assert().ErrorIs(err, ErrDatumTypeMismatch)
}

func TestEncoder(t *testing.T) {
	suite.Run(t, new(EncoderTestSuite))
}
