package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostPublishingFlow(t *testing.T) {
	token := loginAs(t, "admin", "admin123")

	w := doRequest(t, http.MethodPost, "/posts", token, map[string]any{
		"title":   "Prefeitura abre inscrições",
		"summary": "Vagas para cursos gratuitos",
		"body":    "<p>Inscrições abertas.</p>",
	}, http.StatusCreated)

	var created struct {
		Data struct {
			ID   uint   `json:"ID"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "prefeitura-abre-inscricoes", created.Data.Slug)

	// drafts are invisible on the public feed
	doRequest(t, http.MethodGet, "/public/posts/"+created.Data.Slug, "", nil, http.StatusNotFound)

	doRequest(t, http.MethodPut, fmt.Sprintf("/posts/%d", created.Data.ID), token,
		map[string]string{"status": "published"}, http.StatusOK)

	w = doRequest(t, http.MethodGet, "/public/posts/"+created.Data.Slug, "", nil, http.StatusOK)
	var published struct {
		Data struct {
			Status      string  `json:"status"`
			PublishedAt *string `json:"published_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &published))
	assert.Equal(t, "published", published.Data.Status)
	assert.NotNil(t, published.Data.PublishedAt)
}

func TestSlugConflictRejected(t *testing.T) {
	token := loginAs(t, "admin", "admin123")

	doRequest(t, http.MethodPost, "/pages", token, map[string]any{
		"title": "Sobre o Município", "slug": "sobre",
	}, http.StatusCreated)
	doRequest(t, http.MethodPost, "/pages", token, map[string]any{
		"title": "Outra Página", "slug": "sobre",
	}, http.StatusConflict)
}

func TestAuditTrailRecordsMutations(t *testing.T) {
	token := loginAs(t, "admin", "admin123")

	doRequest(t, http.MethodPost, "/posts", token, map[string]any{
		"title": "Post auditado",
	}, http.StatusCreated)

	w := doRequest(t, http.MethodGet, "/audit/logs?resource_type=post&action=create", token, nil, http.StatusOK)
	var logs struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.GreaterOrEqual(t, logs.Total, int64(1))
}
