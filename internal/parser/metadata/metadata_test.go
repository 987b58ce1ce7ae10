package metadata_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/parser/metadata"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtract_OpenGraph(t *testing.T) {
	html := `<head>
	<meta property="og:title" content="Grandma's Pot Roast" />
	<meta property="og:description" content="Slow-cooked comfort." />
	<meta property="og:image" content="//cdn.example.com/roast.jpg" />
	</head>`

	data := metadata.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "Grandma's Pot Roast", data.Title)
	assert.Equal(t, "Slow-cooked comfort.", data.Description)
	assert.Equal(t, []string{"https://cdn.example.com/roast.jpg"}, data.ImageURLs)
}

func TestExtract_TitleTagFallback(t *testing.T) {
	html := `<head>
	<title>Simple Scones</title>
	<meta name="description" content="A weekend bake." />
	</head>`

	data := metadata.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "Simple Scones", data.Title)
	assert.Equal(t, "A weekend bake.", data.Description)
}

func TestExtract_NoTitleReturnsNil(t *testing.T) {
	assert.Nil(t, metadata.Extract(parseDoc(t, `<body><p>nothing here</p></body>`)))
}

func TestExtract_DataURIImageDropped(t *testing.T) {
	html := `<head>
	<meta property="og:title" content="Toast" />
	<meta property="og:image" content="data:image/png;base64,AAAA" />
	</head>`

	data := metadata.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Empty(t, data.ImageURLs)
}
