package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"credit-scan/internal/analyzer"
	"credit-scan/internal/catalog"
	"credit-scan/internal/model"
)

func newTestServer() *Server {
	engine := analyzer.New(catalog.New(), catalog.NewRegistry())
	return New(":0", engine, zap.NewNop())
}

func postUnits(t *testing.T, srv *Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/remediate-credit-fields", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRemediate_Batch(t *testing.T) {
	srv := newTestServer()

	name := "RFDKLI30"
	units := []model.Unit{
		{
			PgmName: "ZCREDIT_REPORT",
			IncName: "ZCREDIT_REPORT_F01",
			Type:    model.CategoryRawCode,
			Code:    "UPDATE KNKK SET KLIMK = '100'.",
		},
		{
			PgmName: "RFDKLI30",
			IncName: "RFDKLI30",
			Type:    model.CategoryProgram,
			Name:    &name,
		},
	}
	body, err := json.Marshal(units)
	require.NoError(t, err)

	rec := postUnits(t, srv, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []model.AnnotatedUnit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)

	// Units are echoed back unchanged, in input order.
	assert.Equal(t, "ZCREDIT_REPORT", results[0].PgmName)
	assert.Equal(t, "ZCREDIT_REPORT_F01", results[0].IncName)
	assert.Equal(t, units[0].Code, results[0].Code)

	// First unit: statement finding plus the overlapping table
	// mention.
	require.Len(t, results[0].Findings, 2)
	stmt := results[0].Findings[0]
	assert.Equal(t, "FIELD", stmt.TargetType)
	assert.Equal(t, "KNKK-KLIMK", stmt.TargetName)
	assert.Equal(t, 0, stmt.StartCharInUnit)
	assert.Equal(t, len(units[0].Code), stmt.EndCharInUnit)
	assert.False(t, stmt.Ambiguous)
	require.NotNil(t, stmt.SuggestedStatement)
	assert.Contains(t, *stmt.SuggestedStatement, "UKMBP_CMS_SGM-CREDIT_LIMIT")

	tbl := results[0].Findings[1]
	assert.Equal(t, "TABLE", tbl.TargetType)
	assert.Equal(t, "KNKK", tbl.TargetName)
	assert.True(t, tbl.Ambiguous)
	assert.Nil(t, tbl.SuggestedStatement)

	// Second unit: the program itself is banned.
	require.Len(t, results[1].Findings, 1)
	obj := results[1].Findings[0]
	assert.Equal(t, "PROG", obj.TargetType)
	assert.Equal(t, "PROG-RFDKLI30", obj.TargetName)
	assert.False(t, obj.Ambiguous)
	require.NotNil(t, obj.SuggestedStatement)
	assert.Equal(t, catalog.EliminationNote, *obj.SuggestedStatement)
}

func TestRemediate_ReservedFieldsOnWire(t *testing.T) {
	srv := newTestServer()

	body := []byte(`[{"pgm_name":"Z1","inc_name":"Z1","type":"raw_code","code":"knkk-knkli"}]`)
	rec := postUnits(t, srv, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 1)

	findings, ok := raw[0]["mb_txn_usage"].([]any)
	require.True(t, ok, "response must carry mb_txn_usage")
	require.NotEmpty(t, findings)

	first, ok := findings[0].(map[string]any)
	require.True(t, ok)

	// Reserved fields are present and empty, not omitted.
	assert.Contains(t, first, "table")
	assert.Nil(t, first["table"])
	assert.Contains(t, first, "suggested_fields")
	assert.Nil(t, first["suggested_fields"])
	used, ok := first["used_fields"].([]any)
	require.True(t, ok, "used_fields must be an array")
	assert.Empty(t, used)
}

func TestRemediate_EmptyBatch(t *testing.T) {
	srv := newTestServer()

	rec := postUnits(t, srv, []byte(`[]`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRemediate_MalformedBody(t *testing.T) {
	srv := newTestServer()

	rec := postUnits(t, srv, []byte(`{not json`))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["detail"], "invalid request body")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
