package repo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
)

const assetID = "5e4d3c2b-1a09-4f8e-8d7c-6b5a49382716"

var assetCols = []string{"id", "company_id", "name", "type", "description", "identifier", "status", "metadata", "assigned_to", "created_at", "updated_at"}

func TestAssetRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO assets \(id, company_id, name, type, description, identifier, status, metadata, assigned_to\)`).
		WithArgs(assetID, companyID, "laptop-01", "hardware", nil, nil, "active", `{"cpu":"m2"}`, nil).
		WillReturnRows(sqlmock.NewRows(assetCols).
			AddRow(assetID, companyID, "laptop-01", "hardware", nil, nil, "active", []byte(`{"cpu":"m2"}`), nil, now, now))

	a, err := NewAssetRepo(db).Create(context.Background(), models.Asset{
		ID: assetID, CompanyID: companyID, Name: "laptop-01", Type: models.AssetHardware,
		Status: models.AssetActive, Metadata: json.RawMessage(`{"cpu":"m2"}`),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if string(a.Metadata) != `{"cpu":"m2"}` || a.Type != models.AssetHardware {
		t.Errorf("unexpected asset: %+v", a)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAssetRepo_CountForCompany(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM assets WHERE company_id = \$1`).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := NewAssetRepo(db).CountForCompany(context.Background(), companyID)
	if err != nil || n != 2 {
		t.Fatalf("CountForCompany = %d, %v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAssetRepo_List_AllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	where := `WHERE company_id = \$1 AND type = \$2 AND status = \$3 AND assigned_to = \$4`
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM assets ` + where).
		WithArgs(companyID, "software", "maintenance", userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM assets ` + where + ` ORDER BY created_at ASC, id ASC LIMIT \$5 OFFSET \$6`).
		WithArgs(companyID, "software", "maintenance", userID, 50, 0).
		WillReturnRows(sqlmock.NewRows(assetCols).
			AddRow(assetID, companyID, "ide", "software", nil, "KEY-1", "maintenance", []byte(`{}`), userID, now, now))

	list, total, err := NewAssetRepo(db).List(context.Background(), query.AssetFilter{
		CompanyID: companyID, Type: "software", Status: "maintenance", AssignedTo: userID,
	}, query.Page{Limit: 50})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].AssignedTo == nil || *list[0].Identifier != "KEY-1" {
		t.Errorf("unexpected list: %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
