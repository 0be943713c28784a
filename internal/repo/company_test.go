package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
)

const companyID = "3f0c5a56-9a61-4c33-9d0e-1b2f2a4f7b10"

var companyCols = []string{"id", "name", "description", "status", "created_at", "updated_at"}

func TestCompanyRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO companies \(id, name, description, status\)\s+VALUES \(\$1, \$2, \$3, \$4\)\s+RETURNING id, name`).
		WithArgs(companyID, "Acme", nil, "active").
		WillReturnRows(sqlmock.NewRows(companyCols).AddRow(companyID, "Acme", nil, "active", now, now))

	repo := NewCompanyRepo(db)
	c, err := repo.Create(context.Background(), models.Company{ID: companyID, Name: "Acme", Status: models.CompanyActive})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != companyID || c.Name != "Acme" || c.Description != nil || c.Status != models.CompanyActive {
		t.Errorf("unexpected company: %+v", c)
	}
	if !c.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCompanyRepo_Get_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, description, status, created_at, updated_at FROM companies WHERE id = \$1`).
		WithArgs(companyID).
		WillReturnError(sql.ErrNoRows)

	_, err = NewCompanyRepo(db).Get(context.Background(), companyID)
	if err != sql.ErrNoRows {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCompanyRepo_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM companies WHERE id = \$1 FOR SHARE`).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`SELECT 1 FROM companies WHERE id = \$1 FOR SHARE`).
		WithArgs(companyID).
		WillReturnError(sql.ErrNoRows)

	repo := NewCompanyRepo(db)
	ok, err := repo.Exists(context.Background(), companyID)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v; want true, nil", ok, err)
	}
	ok, err = repo.Exists(context.Background(), companyID)
	if err != nil || ok {
		t.Fatalf("Exists = %v, %v; want false, nil", ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCompanyRepo_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	desc := "widgets"
	now := time.Now()
	mock.ExpectQuery(`UPDATE companies\s+SET name = \$2, description = \$3, status = \$4, updated_at = now\(\)\s+WHERE id = \$1`).
		WithArgs(companyID, "Acme", desc, "suspended").
		WillReturnRows(sqlmock.NewRows(companyCols).AddRow(companyID, "Acme", desc, "suspended", now, now))

	c, err := NewCompanyRepo(db).Update(context.Background(), models.Company{
		ID: companyID, Name: "Acme", Description: &desc, Status: models.CompanySuspended,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c.Description == nil || *c.Description != desc || c.Status != models.CompanySuspended {
		t.Errorf("unexpected company: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCompanyRepo_List_Filters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companies WHERE status = \$1 AND name ILIKE \$2`).
		WithArgs("active", "%ac%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT .+ FROM companies WHERE status = \$1 AND name ILIKE \$2 ESCAPE '\\' ORDER BY created_at ASC, id ASC LIMIT \$3 OFFSET \$4`).
		WithArgs("active", "%ac%", 2, 1).
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow(companyID, "Acme", nil, "active", now, now).
			AddRow("7d9b3c1e-2f1a-4d4b-8a8e-5c6d7e8f9a0b", "Acme East", nil, "active", now, now))

	list, total, err := NewCompanyRepo(db).List(context.Background(),
		query.CompanyFilter{Status: "active", Name: "ac"}, query.Page{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(list) != 2 {
		t.Errorf("total=%d len=%d, want 3 and 2", total, len(list))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCompanyRepo_List_UnknownStatusMatchesNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companies WHERE FALSE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .+ FROM companies WHERE FALSE ORDER BY created_at ASC, id ASC LIMIT \$1 OFFSET \$2`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(companyCols))

	list, total, err := NewCompanyRepo(db).List(context.Background(),
		query.CompanyFilter{Status: "archived"}, query.Page{Limit: 50})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 || list == nil || len(list) != 0 {
		t.Errorf("want empty non-nil list, got %v (total %d)", list, total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
