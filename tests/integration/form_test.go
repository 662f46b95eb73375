package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/prefeitura-digital/cms-go/pkg/formengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOuvidoriaForm(t *testing.T, token string) (uint, string) {
	t.Helper()

	payload := map[string]any{
		"title":     "Ouvidoria",
		"slug":      "ouvidoria-" + strings.ToLower(t.Name()),
		"published": true,
		"fields": []formengine.FieldDefinition{
			{ID: "nome", Type: formengine.FieldTypeText, Label: "Nome", Required: true, Order: 1},
			{ID: "email", Type: formengine.FieldTypeEmail, Label: "E-mail", Required: true, Order: 2},
			{ID: "tipo", Type: formengine.FieldTypeSelect, Label: "Tipo", Required: true, Order: 3,
				Options: []formengine.Option{
					{Value: "elogio", Label: "Elogio"},
					{Value: "reclamacao", Label: "Reclamação"},
				}},
			{ID: "protocolo", Type: formengine.FieldTypeText, Label: "Protocolo anterior", Required: true, Order: 4,
				ConditionalLogic: &formengine.ConditionalLogic{
					ShowIf: &formengine.ShowIf{FieldID: "tipo", Operator: formengine.OperatorEquals, Value: "reclamacao"},
				}},
		},
		"settings": formengine.Settings{AllowMultipleSubmissions: true},
	}

	w := doRequest(t, http.MethodPost, "/forms", token, payload, http.StatusCreated)

	var resp struct {
		Data struct {
			ID   uint   `json:"ID"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Data.ID)
	return resp.Data.ID, resp.Data.Slug
}

func TestFormLifecycle(t *testing.T) {
	token := loginAs(t, "admin", "admin123")
	formID, slug := createOuvidoriaForm(t, token)

	// the published form renders publicly, without auth
	doRequest(t, http.MethodGet, "/public/forms/"+slug, "", nil, http.StatusOK)

	// an elogio hides the protocolo field entirely
	doRequest(t, http.MethodPost, "/public/forms/"+slug+"/submissions", "",
		map[string]any{"data": map[string]any{
			"nome": "Ana", "email": "ana@example.com", "tipo": "elogio",
		}}, http.StatusCreated)

	// a reclamação reveals protocolo and requires it
	w := doRequest(t, http.MethodPost, "/public/forms/"+slug+"/submissions", "",
		map[string]any{"data": map[string]any{
			"nome": "Bia", "email": "bia@example.com", "tipo": "reclamacao",
		}}, http.StatusUnprocessableEntity)

	var refusal struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refusal))
	assert.Contains(t, refusal.Fields, "protocolo")

	doRequest(t, http.MethodPost, "/public/forms/"+slug+"/submissions", "",
		map[string]any{"data": map[string]any{
			"nome": "Bia", "email": "bia@example.com", "tipo": "reclamacao", "protocolo": "2026-0042",
		}}, http.StatusCreated)

	// both accepted submissions show up for the admin
	w = doRequest(t, http.MethodGet, fmt.Sprintf("/forms/%d/submissions", formID), token, nil, http.StatusOK)
	var listing struct {
		Data []struct {
			ID     uint   `json:"ID"`
			Status string `json:"status"`
		} `json:"data"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.EqualValues(t, 2, listing.Total)

	// moderation
	subID := listing.Data[0].ID
	w = doRequest(t, http.MethodPut, fmt.Sprintf("/submissions/%d/status", subID), token,
		map[string]string{"status": "approved"}, http.StatusOK)
	var moderated struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moderated))
	assert.Equal(t, "approved", moderated.Data.Status)
}

func TestFormSubmissionValidation(t *testing.T) {
	token := loginAs(t, "admin", "admin123")
	_, slug := createOuvidoriaForm(t, token)

	// invalid select option and broken email both refused in one pass
	w := doRequest(t, http.MethodPost, "/public/forms/"+slug+"/submissions", "",
		map[string]any{"data": map[string]any{
			"nome": "Caio", "email": "not-an-email", "tipo": "outro",
		}}, http.StatusUnprocessableEntity)

	var refusal struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refusal))
	assert.Equal(t, "E-mail inválido", refusal.Fields["email"])
	assert.Equal(t, "Opção inválida", refusal.Fields["tipo"])
}

func TestUnpublishedFormHiddenFromPublic(t *testing.T) {
	token := loginAs(t, "admin", "admin123")
	formID, slug := createOuvidoriaForm(t, token)

	published := false
	doRequest(t, http.MethodPut, fmt.Sprintf("/forms/%d", formID), token,
		map[string]any{"published": published}, http.StatusOK)

	doRequest(t, http.MethodGet, "/public/forms/"+slug, "", nil, http.StatusNotFound)
	doRequest(t, http.MethodPost, "/public/forms/"+slug+"/submissions", "",
		map[string]any{"data": map[string]any{}}, http.StatusNotFound)
}

func TestFormRoutesRequirePermission(t *testing.T) {
	editorToken := loginAs(t, "editor", "editor123")

	// editor without a forms capability row is refused
	doRequest(t, http.MethodGet, "/forms", editorToken, nil, http.StatusForbidden)

	// admin grants read access and the listing opens up
	adminToken := loginAs(t, "admin", "admin123")
	var editorID uint
	w := doRequest(t, http.MethodGet, "/me", editorToken, nil, http.StatusOK)
	var me struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	editorID = me.Data.ID

	doRequest(t, http.MethodPost, "/permissions", adminToken, map[string]any{
		"user_id": editorID, "module": "forms", "can_read": true,
	}, http.StatusOK)

	doRequest(t, http.MethodGet, "/forms", editorToken, nil, http.StatusOK)
}
