package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childCollection() *Collection {
	return &Collection{Level: 2, Features: []*Feature{
		withProps(Properties{Name2: Str("a1"), Name1: Str("Region A")}),
		withProps(Properties{Name2: Str("a2"), Adm1EN: Str("Region A")}),
		withProps(Properties{Name2: Str("a3"), Parent: Str("Region A")}),
		withProps(Properties{Name2: Str("a4"), Province: Str("Region A")}),
		withProps(Properties{Name2: Str("b1"), Name1: Str("Region B")}),
		withProps(Properties{Name2: Str("lower"), Name1: Str("region a")}),
		withProps(Properties{Name2: Str("partial"), Name1: Str("Region A North")}),
	}}
}

func TestFilterChildren(t *testing.T) {
	t.Run("no parent", func(t *testing.T) {
		c, matched := FilterChildren(childCollection(), nil)
		assert.Nil(t, c)
		assert.False(t, matched)
	})

	t.Run("absent children", func(t *testing.T) {
		c, _ := FilterChildren(nil, withProps(Properties{Name: Str("Region A")}))
		assert.Nil(t, c)
	})

	t.Run("parent without name", func(t *testing.T) {
		c, _ := FilterChildren(childCollection(), withProps(Properties{Province: Str("Region A")}))
		assert.Nil(t, c)
	})

	t.Run("matches any parent-link field exactly", func(t *testing.T) {
		c, matched := FilterChildren(childCollection(), withProps(Properties{Name1: Str("Region A")}))
		require.NotNil(t, c)
		assert.True(t, matched)
		assert.Equal(t, 2, c.Level)

		var names []string
		for _, f := range c.Features {
			names = append(names, *f.Props.Name2)
		}
		assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, names)
	})

	t.Run("name takes precedence over NAME_1", func(t *testing.T) {
		parent := withProps(Properties{Name: Str("Region B"), Name1: Str("Region A")})
		c, matched := FilterChildren(childCollection(), parent)
		require.NotNil(t, c)
		assert.True(t, matched)
		require.Len(t, c.Features, 1)
		assert.Equal(t, "b1", *c.Features[0].Props.Name2)
	})

	t.Run("no match falls back to the unfiltered set", func(t *testing.T) {
		children := childCollection()
		c, matched := FilterChildren(children, withProps(Properties{Name: Str("Unmatched Province")}))
		assert.False(t, matched)
		assert.Same(t, children, c)
		assert.Equal(t, 7, c.Len())
	})
}
