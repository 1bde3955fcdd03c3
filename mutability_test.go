package saddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictestIsJoin(t *testing.T) {
	assert.Equal(t, Immutable, Strictest(Immutable, Immutable))
	assert.Equal(t, Mutable, Strictest(Mutable, Immutable))
	assert.Equal(t, Mutable, Strictest(Immutable, Mutable))
	assert.Equal(t, Mutable, Strictest(Mutable, Mutable))
}

func TestStrictestOverSequenceEqualsJoinOfAll(t *testing.T) {
	seq := []Mutability{Immutable, Immutable, Immutable}
	got := Immutable
	for _, m := range seq {
		got = Strictest(got, m)
	}
	assert.Equal(t, Immutable, got)

	seq = []Mutability{Immutable, Mutable, Immutable}
	got = Immutable
	for _, m := range seq {
		got = Strictest(got, m)
	}
	assert.Equal(t, Mutable, got)
}

func TestCompatibleOnlyBothImmutable(t *testing.T) {
	assert.True(t, Compatible(Immutable, Immutable))
	assert.False(t, Compatible(Immutable, Mutable))
	assert.False(t, Compatible(Mutable, Immutable))
	assert.False(t, Compatible(Mutable, Mutable))
}

func TestMutabilityAdjective(t *testing.T) {
	assert.Equal(t, "immutably", Immutable.Adjective())
	assert.Equal(t, "mutably", Mutable.Adjective())
}
