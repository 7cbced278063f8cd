package biopage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "john-doe", MakeSlug("John", "Doe"))
	assert.Equal(t, "ana-maria-silva", MakeSlug("Ana Maria", "Silva"))
	assert.Equal(t, "ok", MakeSlug("  Ok!!  ", ""))
	assert.Equal(t, "a-b", MakeSlug("a---b", ""))
}

func TestMakeSlugFallback(t *testing.T) {
	// names that strip to nothing still produce a usable base
	assert.Equal(t, "creator", MakeSlug("!!!", "???"))
	assert.Equal(t, "creator", MakeSlug("", ""))
}

func TestBuildPublicURL(t *testing.T) {
	assert.Equal(t, "https://creator.page/p/john-doe-32", BuildPublicURL("john-doe-32"))
}
