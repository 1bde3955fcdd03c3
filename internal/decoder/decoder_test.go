package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAllFiveShapes(t *testing.T) {
	buf := "junk bytes before" +
		"SaddleInternalV1DeclForDepRef<Root,X>" +
		"more junk" +
		"SaddleInternalV1DeclForDepMut<Root,Y>" +
		"SaddleInternalV1DeclForGrantRef<A,X>" +
		"SaddleInternalV1DeclForGrantMut<A,Y>" +
		"SaddleInternalV1DeclForCall<Root,A>" +
		"trailing junk"

	records, err := Decode([]byte(buf))
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, Record{DepRef, "Root", "X"}, records[0])
	assert.Equal(t, Record{DepMut, "Root", "Y"}, records[1])
	assert.Equal(t, Record{GrantRef, "A", "X"}, records[2])
	assert.Equal(t, Record{GrantMut, "A", "Y"}, records[3])
	assert.Equal(t, Record{Call, "Root", "A"}, records[4])
}

func TestDecodeNoDirectivesIsNotAnError(t *testing.T) {
	records, err := Decode([]byte("nothing of interest here"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeWhitespaceInsensitivity(t *testing.T) {
	tight, err := Decode([]byte("SaddleInternalV1DeclForCall<Root,A>"))
	require.NoError(t, err)

	spaced, err := Decode([]byte("SaddleInternalV1DeclForCall< Root , A >"))
	require.NoError(t, err)

	require.Len(t, tight, 1)
	require.Len(t, spaced, 1)
	assert.Equal(t, tight[0].Arg1, spaced[0].Arg1)
	assert.Equal(t, tight[0].Arg2, spaced[0].Arg2)
}

func TestDecodeNestedGenerics(t *testing.T) {
	records, err := Decode([]byte("SaddleInternalV1DeclForDepRef<Foo<Bar,Baz>,Simple>"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Foo<Bar,Baz>", records[0].Arg1)
	assert.Equal(t, "Simple", records[0].Arg2)
}

func TestDecodeMalformedDirectiveIsFatal(t *testing.T) {
	_, err := Decode([]byte("SaddleInternalV1DeclForNotAKind<A,B>"))
	assert.Error(t, err)
}

func TestDecodeMalformedMissingCloseIsFatal(t *testing.T) {
	_, err := Decode([]byte("SaddleInternalV1DeclForCall<Root,A"))
	assert.Error(t, err)
}

func TestDecodeOrderPreserved(t *testing.T) {
	buf := "SaddleInternalV1DeclForCall<A,B>SaddleInternalV1DeclForCall<B,C>SaddleInternalV1DeclForCall<C,D>"
	records, err := Decode([]byte(buf))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "A", records[0].Arg1)
	assert.Equal(t, "B", records[1].Arg1)
	assert.Equal(t, "C", records[2].Arg1)
}
