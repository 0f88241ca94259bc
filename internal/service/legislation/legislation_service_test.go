package legislation

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailPageHTML = `
<html><body>
  <h1>Lei 12.305/2010</h1>
  <span class="status">revogada</span>
  <span class="data-publicacao">02/08/2010</span>
  <table class="requisitos">
    <tbody>
      <tr><th>Logística reversa</th><td>Implantar sistema de logística reversa.</td></tr>
      <tr><th>PGRS</th><td>Elaborar plano de gerenciamento de resíduos sólidos.</td></tr>
      <tr><th></th><td>linha sem nome, ignorada</td></tr>
    </tbody>
  </table>
</body></html>`

func TestParseDetailPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(detailPageHTML))
	require.NoError(t, err)

	item := parseDetailPage(doc)

	assert.Equal(t, "revogada", item.Status)
	require.NotNil(t, item.PublishedAt)
	assert.Equal(t, "02/08/2010", item.PublishedAt.Format(publishedAtLayout))
	assert.Len(t, item.Requirements, 2)
	assert.Equal(t, "Implantar sistema de logística reversa.", item.Requirements["Logística reversa"])
}

func TestParseDetailPageDefaults(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)

	item := parseDetailPage(doc)

	assert.Equal(t, "vigente", item.Status)
	assert.Nil(t, item.PublishedAt)
	assert.Empty(t, item.Requirements)
}
