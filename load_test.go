package saddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAcceptsWellFormedBinary(t *testing.T) {
	buf := "SaddleInternalV1DeclForCall<Root,A>" +
		"SaddleInternalV1DeclForDepRef<A,X>"

	g, err := Load([]byte(buf))
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.NoError(t, g.Validate())
}

func TestLoadWiresGrants(t *testing.T) {
	buf := "SaddleInternalV1DeclForCall<Root,A>" +
		"SaddleInternalV1DeclForDepMut<Root,X>" +
		"SaddleInternalV1DeclForGrantMut<A,X>" +
		"SaddleInternalV1DeclForDepRef<A,X>"

	g, err := Load([]byte(buf))
	require.NoError(t, err)
	assert.NoError(t, g.Validate())
}

func TestLoadNoDirectivesIsFatal(t *testing.T) {
	g, err := Load([]byte("nothing here"))
	assert.Nil(t, g)
	require.Error(t, err)

	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, NoDirectives, serr.Kind)
}

func TestLoadMalformedDirectiveIsFatal(t *testing.T) {
	g, err := Load([]byte("SaddleInternalV1DeclForNotAKind<A,B>"))
	assert.Nil(t, g)
	require.Error(t, err)

	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, Malformed, serr.Kind)
	require.NotNil(t, serr.Err)
}
