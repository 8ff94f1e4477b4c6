package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "The Freedom Layer", c.Title)
	assert.Equal(t, "The Freedom Layer", c.Headline)
	assert.Contains(t, c.Description, "End-to-End Encryption")
	require.Len(t, c.Sections, 3)
	assert.Equal(t, "Secure Messaging", c.Sections[0].Heading)
	assert.Equal(t, "User Control & Privacy", c.Sections[1].Heading)
	assert.Equal(t, "Our Philosophy", c.Sections[2].Heading)
	for _, s := range c.Sections {
		assert.NotContains(t, s.Body, "\n")
	}
	assert.Equal(t, "Your conversations. Your privacy. Your freedom.", c.Tagline)
	assert.Equal(t, "https://github.com/ib729/The-Freedom-Layer", c.Repository)
}

func TestParseRejectsBadContent(t *testing.T) {
	_, err := Parse([]byte("sections: [\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("tagline: hi\n"))
	assert.Error(t, err)
}
