package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/crucial707/hci-inventory/internal/config"
)

const (
	companyID = "3f0c5a56-9a61-4c33-9d0e-1b2f2a4f7b10"
	userID    = "0b6f2a8e-4c1d-4e5f-9a7b-3c2d1e0f9a8b"
	assetID   = "5e4d3c2b-1a09-4f8e-8d7c-6b5a49382716"
)

var (
	companyCols = []string{"id", "name", "description", "status", "created_at", "updated_at"}
	assetCols   = []string{"id", "company_id", "name", "type", "description", "identifier", "status", "metadata", "assigned_to", "created_at", "updated_at"}
	auditCols   = []string{"id", "entity_type", "entity_id", "action", "company_id", "actor", "changes", "created_at"}
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
		Page   int `json:"page"`
	} `json:"meta"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func testServer(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{JWTSecret: "test-secret-for-integration", PageMaxLimit: 100, MaxBodyBytes: 1 << 20}
	srv := httptest.NewServer(newRouter(db, cfg))
	t.Cleanup(srv.Close)
	return srv, mock
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any, headers map[string]string) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, _ := http.NewRequest(method, srv.URL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return resp, env
}

func TestAPI_CreateCompanyThenDuplicate(t *testing.T) {
	srv, mock := testServer(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO companies`).
		WithArgs(sqlmock.AnyArg(), "Acme", nil, "active").
		WillReturnRows(sqlmock.NewRows(companyCols).AddRow(companyID, "Acme", nil, "active", now, now))
	mock.ExpectQuery(`INSERT INTO audit_log`).
		WithArgs(sqlmock.AnyArg(), "company", companyID, "create", companyID, userID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(auditCols).AddRow("01J0000000000000000000000A", "company", companyID, "create", companyID, userID, []byte(`{}`), now))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO companies`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "companies_name_key"})
	mock.ExpectRollback()

	headers := map[string]string{"X-User-Id": userID}
	resp, env := do(t, srv, "POST", "/companies", map[string]string{"name": "Acme"}, headers)
	if resp.StatusCode != http.StatusCreated || !env.Success {
		t.Fatalf("create: status %d, body %+v", resp.StatusCode, env)
	}
	var c struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &c); err != nil || c.ID != companyID || c.Status != "active" {
		t.Errorf("unexpected company: %s", env.Data)
	}

	resp, env = do(t, srv, "POST", "/companies", map[string]string{"name": "Acme"}, headers)
	if resp.StatusCode != http.StatusBadRequest || env.Success || env.Error == nil || env.Error.Code != "CONFLICT" {
		t.Fatalf("duplicate: status %d, body %+v", resp.StatusCode, env)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_ValidationAndBadRequest(t *testing.T) {
	srv, _ := testServer(t)

	resp, env := do(t, srv, "POST", "/users", map[string]string{"email": "nope"}, nil)
	if resp.StatusCode != http.StatusBadRequest || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}
	if len(env.Error.Details["email"]) == 0 || len(env.Error.Details["name"]) == 0 {
		t.Errorf("expected email and name details, got %v", env.Error.Details)
	}

	resp, env = do(t, srv, "POST", "/assets", "{not json", nil)
	if resp.StatusCode != http.StatusBadRequest || env.Error.Code != "BAD_REQUEST" {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}

	resp, env = do(t, srv, "GET", "/companies?limit=0", nil, nil)
	if resp.StatusCode != http.StatusBadRequest || env.Error.Details["limit"] == nil {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}

	resp, env = do(t, srv, "GET", "/companies/not-a-uuid", nil, nil)
	if resp.StatusCode != http.StatusBadRequest || env.Error.Details["id"] == nil {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}
}

func TestAPI_ListCompaniesCapsLimit(t *testing.T) {
	srv, mock := testServer(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companies WHERE status = \$1`).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM companies WHERE status = \$1 ORDER BY created_at ASC, id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs("active", 100, 0).
		WillReturnRows(sqlmock.NewRows(companyCols).AddRow(companyID, "Acme", nil, "active", now, now))

	resp, env := do(t, srv, "GET", "/companies?status=active&limit=500", nil, nil)
	if resp.StatusCode != http.StatusOK || env.Meta == nil {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}
	if env.Meta.Limit != 100 || env.Meta.Total != 1 || env.Meta.Page != 1 {
		t.Errorf("unexpected meta: %+v", *env.Meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_RevokeTwice(t *testing.T) {
	srv, mock := testServer(t)
	now := time.Now()

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM companies WHERE id = \$1 FOR SHARE`).WithArgs(companyID).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectQuery(`SELECT 1 FROM users WHERE id = \$1 FOR SHARE`).WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		rows := sqlmock.NewRows([]string{"company_id", "user_id", "role", "granted_at"})
		if i == 0 {
			rows.AddRow(companyID, userID, "MEMBER", now)
		}
		mock.ExpectQuery(`DELETE FROM company_access WHERE company_id = \$1 AND user_id = \$2`).
			WithArgs(companyID, userID).WillReturnRows(rows)
		if i == 0 {
			mock.ExpectQuery(`INSERT INTO audit_log`).
				WillReturnRows(sqlmock.NewRows(auditCols).AddRow("01J0000000000000000000000A", "access", userID, "revoke", companyID, nil, []byte(`{}`), now))
			mock.ExpectCommit()
		} else {
			mock.ExpectRollback()
		}
	}

	resp, _ := do(t, srv, "DELETE", "/companies/"+companyID+"/users/"+userID, nil, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("first revoke: status %d", resp.StatusCode)
	}
	resp, env := do(t, srv, "DELETE", "/companies/"+companyID+"/users/"+userID, nil, nil)
	if resp.StatusCode != http.StatusNotFound || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("second revoke: status %d, body %+v", resp.StatusCode, env)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_DeleteAssetWithHistory(t *testing.T) {
	srv, mock := testServer(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM assets WHERE id = \$1 FOR UPDATE`).WithArgs(assetID).
		WillReturnRows(sqlmock.NewRows(assetCols).
			AddRow(assetID, companyID, "laptop", "hardware", nil, nil, "active", []byte(`{}`), nil, now, now))
	mock.ExpectQuery(`FROM audit_log WHERE entity_type = \$1 AND entity_id = \$2 AND action <> 'create'`).
		WithArgs("asset", assetID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	resp, env := do(t, srv, "DELETE", "/assets/"+assetID, nil, nil)
	if resp.StatusCode != http.StatusBadRequest || env.Error.Code != "CONFLICT" {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_StoreUnavailable(t *testing.T) {
	srv, mock := testServer(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).WithArgs(userID).WillReturnError(sql.ErrConnDone)

	resp, env := do(t, srv, "GET", "/users/"+userID, nil, nil)
	if resp.StatusCode != http.StatusServiceUnavailable || env.Error.Code != "UNAVAILABLE" {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}
	if env.Error.Message != "Service temporarily unavailable" {
		t.Errorf("driver detail leaked: %q", env.Error.Message)
	}
}

func TestAPI_HealthAndRoutes(t *testing.T) {
	srv, _ := testServer(t)

	resp, env := do(t, srv, "GET", "/health", nil, nil)
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("health: status %d", resp.StatusCode)
	}

	resp, env = do(t, srv, "GET", "/nope", nil, nil)
	if resp.StatusCode != http.StatusNotFound || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("unknown route: status %d", resp.StatusCode)
	}

	resp, env = do(t, srv, "PUT", "/companies", nil, nil)
	if resp.StatusCode != http.StatusMethodNotAllowed || env.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Fatalf("wrong method: status %d", resp.StatusCode)
	}

	resp, _ = do(t, srv, "GET", "/", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("info: status %d", resp.StatusCode)
	}
}

func TestAPI_InvalidBearerToken(t *testing.T) {
	srv, _ := testServer(t)

	resp, env := do(t, srv, "POST", "/companies", map[string]string{"name": "Acme"},
		map[string]string{"Authorization": "Bearer not.a.jwt"})
	if resp.StatusCode != http.StatusUnauthorized || env.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("status %d, body %+v", resp.StatusCode, env)
	}
}
