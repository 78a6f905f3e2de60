package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCamelCase(t *testing.T) {
	for in, want := range map[string]string{
		"age":         "Age",
		"first_name":  "FirstName",
		"Name":        "Name",
		"ID":          "ID",
		"_private":    "Private",
		"a__b":        "AB",
		"trailing_":   "Trailing",
		"x_1":         "X1",
		"élan_vital":  "ÉlanVital",
		"http_server": "HttpServer",
	} {
		require.Equal(t, want, camelCase(in), in)
	}
}

func TestNamespaceName(t *testing.T) {
	t.Run("default appends Field", func(t *testing.T) {
		require.Equal(t, "PersonField", namespaceName("Person", ""))
		require.Equal(t, "personField", namespaceName("person", ""))
	})

	t.Run("explicit name is camel cased", func(t *testing.T) {
		require.Equal(t, "DogTag", namespaceName("Dog", "dog_tag"))
		require.Equal(t, "Keys", namespaceName("Dog", "Keys"))
	})

	t.Run("explicit name follows unexported record", func(t *testing.T) {
		require.Equal(t, "dogTag", namespaceName("dog", "dog_tag"))
		require.Equal(t, "keys", namespaceName("dog", "Keys"))
	})
}

func TestIsTagName(t *testing.T) {
	require.True(t, isTagName("Age"))
	require.True(t, isTagName("X1"))
	require.False(t, isTagName("age"))
	require.False(t, isTagName("1X"))
	require.False(t, isTagName("First-Name"))
	require.False(t, isTagName(""))
}
