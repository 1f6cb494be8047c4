package agencies

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/files"
	"sampark/infrastructure/store"
	"sampark/models"
)

type nopAudit struct{ actions []string }

func (a *nopAudit) Record(_ context.Context, _, action, _, _ string, _, _ any) {
	a.actions = append(a.actions, action)
}

type exportRecorder struct {
	exportType string
	rows       int
}

func (e *exportRecorder) RecordExport(_ context.Context, _, exportType string, rows int) error {
	e.exportType = exportType
	e.rows = rows
	return nil
}

func seeded(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewSeeded("")
	require.NoError(t, err)
	return s
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   models.Agency
		ok   bool
	}{
		{name: "ok", in: models.Agency{Name: "X", Type: models.AgencyImplementing}, ok: true},
		{name: "blank name", in: models.Agency{Name: "  ", Type: models.AgencyImplementing}},
		{name: "bad type", in: models.Agency{Name: "X", Type: "Nodal"}},
		{name: "bad status", in: models.Agency{Name: "X", Type: models.AgencyExecuting, Status: "Gone"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.in)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, apperrors.ErrValidation), "got %v", err)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	assert.NoError(t, ValidatePatch(models.AgencyPatch{HeadName: models.Ptr("New Head")}))
	assert.Error(t, ValidatePatch(models.AgencyPatch{Name: models.Ptr("")}))
	assert.Error(t, ValidatePatch(models.AgencyPatch{Type: models.Ptr(models.AgencyType("Other"))}))
	assert.Error(t, ValidatePatch(models.AgencyPatch{Status: models.Ptr(models.AgencyStatus("inactive"))}))
}

func TestImportAppliesDefaultsAndSkipsInvalidRows(t *testing.T) {
	s := seeded(t)
	before := s.Agencies.Len()

	res, err := Import(context.Background(), s.Agencies, []map[string]string{
		{"name": "Block Office Thane"},
		{"name": "", "type": "Executing"},
		{"name": "Bad Type", "type": "Nodal"},
		{"name": "District Unit", "type": "Executing", "status": "Inactive"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 2, res.Skipped[0].Row)
	assert.Equal(t, 3, res.Skipped[1].Row)
	assert.Equal(t, models.AgencyImplementing, res.Agencies[0].Type)
	assert.Equal(t, models.AgencyActive, res.Agencies[0].Status)
	assert.Equal(t, models.AgencyInactive, res.Agencies[1].Status)
	assert.Equal(t, before+2, s.Agencies.Len())
}

func TestExportThenImportRoundTrip(t *testing.T) {
	s := seeded(t)
	exports := &exportRecorder{}

	rr := httptest.NewRecorder()
	ExportCSVQueryHandler(s.Agencies, exports).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/agencies/export.csv", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "agencies_export_")
	assert.True(t, strings.HasPrefix(rr.Body.String(), strings.Join(CSVHeader, ",")+"\n"))
	assert.Equal(t, exportType, exports.exportType)
	assert.Equal(t, s.Agencies.Len(), exports.rows)

	fresh := store.New()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "agencies.csv")
	require.NoError(t, err)
	_, err = part.Write(rr.Body.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/agencies/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	aud := &nopAudit{}
	rr = httptest.NewRecorder()
	ImportCommandHandler(fresh.Agencies, files.NewBlobs(), 1<<20, aud).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var res ImportResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, s.Agencies.Len(), res.Imported)
	assert.Empty(t, res.Skipped)
	assert.Len(t, aud.actions, res.Imported)

	imported, err := fresh.Agencies.Filter(context.Background(), store.Query{"name": "Gujarat Tribal Development Board"})
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "Gujarat", imported[0].StateName)
	assert.Equal(t, "Ahmedabad", imported[0].DistrictName)
	assert.Equal(t, "+91-79-23250505", imported[0].HeadContact)
	assert.Equal(t, "chairman@gtdb.gov.in", imported[0].HeadEmail)
}

func TestImportRejectsNonCSV(t *testing.T) {
	s := seeded(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/agencies/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	ImportCommandHandler(s.Agencies, files.NewBlobs(), 1<<20, &nopAudit{}).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "import failed")
}
