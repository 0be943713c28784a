package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var userCols = []string{"id", "email", "name", "primary_company_id", "status", "created_at", "updated_at"}

func TestUserHandler_CreateUser(t *testing.T) {
	svc, mock := newService(t)
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), "ada@example.com", "Ada", nil, "active").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userID, "ada@example.com", "Ada", nil, "active", now, now))
	mock.ExpectQuery(`INSERT INTO audit_log`).
		WithArgs(sqlmock.AnyArg(), "user", userID, "create", nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(auditCols).AddRow("01J0000000000000000000000A", "user", userID, "create", nil, nil, []byte(`{}`), now))
	mock.ExpectCommit()

	h := &UserHandler{Svc: svc}
	req := httptest.NewRequest("POST", "/users", bytesBody(`{"email":" ada@example.com ","name":"Ada"}`))
	rr := httptest.NewRecorder()
	h.CreateUser(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("CreateUser status: got %d, want 201", rr.Code)
	}
	resp := decodeResponse(t, rr)
	var u struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Data, &u); err != nil || u.ID != userID || u.Status != "active" {
		t.Errorf("unexpected user: %s", resp.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserHandler_GetUser_MalformedID(t *testing.T) {
	svc, mock := newService(t)
	h := &UserHandler{Svc: svc}

	req := requestWithChiURLParams("GET", "/users/42", nil, map[string]string{"id": "42"})
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("GetUser status: got %d, want 400", rr.Code)
	}
	if resp := decodeResponse(t, rr); len(resp.Error.Details["id"]) == 0 {
		t.Errorf("expected id detail, got %+v", resp.Error)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store was touched: %v", err)
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	svc, mock := newService(t)
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`FROM users WHERE id = \$1 FOR UPDATE`).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userID, "ada@example.com", "Ada", companyID, "active", now, now))
	mock.ExpectQuery(`DELETE FROM company_access WHERE user_id = \$1 RETURNING`).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"company_id", "user_id", "role", "granted_at"}).
			AddRow(companyID, userID, "MEMBER", now))
	mock.ExpectQuery(`INSERT INTO audit_log`).
		WithArgs(sqlmock.AnyArg(), "access", userID, "revoke", companyID, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(auditCols).AddRow("01J0000000000000000000000A", "access", userID, "revoke", companyID, nil, []byte(`{}`), now))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO audit_log`).
		WithArgs(sqlmock.AnyArg(), "user", userID, "delete", companyID, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(auditCols).AddRow("01J0000000000000000000000B", "user", userID, "delete", companyID, nil, []byte(`{}`), now))
	mock.ExpectCommit()

	h := &UserHandler{Svc: svc}
	req := requestWithChiURLParams("DELETE", "/users/"+userID, nil, map[string]string{"id": userID})
	rr := httptest.NewRecorder()
	h.DeleteUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("DeleteUser status: got %d, want 200", rr.Code)
	}
	resp := decodeResponse(t, rr)
	if string(resp.Data) != `{"message":"User deleted successfully"}` {
		t.Errorf("unexpected body: %s", resp.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserHandler_ListUserAuditLogs(t *testing.T) {
	svc, mock := newService(t)
	now := time.Now()
	mock.ExpectQuery(`FROM users WHERE id = \$1`).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userID, "ada@example.com", "Ada", nil, "active", now, now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_log WHERE \(actor = \$1 OR entity_id = \$1\)`).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`FROM audit_log WHERE \(actor = \$1 OR entity_id = \$1\) ORDER BY created_at ASC, id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(userID, 5, 5).
		WillReturnRows(sqlmock.NewRows(auditCols).
			AddRow("01J0000000000000000000000A", "company", companyID, "update", companyID, userID, []byte(`{}`), now))

	h := &UserHandler{Svc: svc}
	req := requestWithChiURLParams("GET", "/users/"+userID+"/audit-logs?limit=5&offset=5", nil, map[string]string{"id": userID})
	rr := httptest.NewRecorder()
	h.ListUserAuditLogs(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("ListUserAuditLogs status: got %d, want 200", rr.Code)
	}
	resp := decodeResponse(t, rr)
	want := map[string]int{"total": 7, "limit": 5, "offset": 5, "page": 2}
	for k, v := range want {
		if resp.Meta[k] != v {
			t.Errorf("meta[%s]: got %d, want %d", k, resp.Meta[k], v)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
