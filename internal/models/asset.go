package models

import (
	"encoding/json"
	"time"
)

type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetInactive    AssetStatus = "inactive"
	AssetDisposed    AssetStatus = "disposed"
	AssetMaintenance AssetStatus = "maintenance"
)

var AssetStatuses = []AssetStatus{AssetActive, AssetInactive, AssetDisposed, AssetMaintenance}

func (s AssetStatus) Valid() bool {
	for _, v := range AssetStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type AssetType string

const (
	AssetHardware AssetType = "hardware"
	AssetSoftware AssetType = "software"
	AssetLicense  AssetType = "license"
	AssetOther    AssetType = "other"
)

var AssetTypes = []AssetType{AssetHardware, AssetSoftware, AssetLicense, AssetOther}

func (t AssetType) Valid() bool {
	for _, v := range AssetTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Asset is an inventory item owned by exactly one company.
type Asset struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Type        AssetType       `json:"type"`
	Description *string         `json:"description"`
	Identifier  *string         `json:"identifier"`
	Status      AssetStatus     `json:"status"`
	Metadata    json.RawMessage `json:"metadata"`
	AssignedTo  *string         `json:"assigned_to"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AssetInput struct {
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description *string         `json:"description"`
	Identifier  *string         `json:"identifier"`
	Status      string          `json:"status"`
	Metadata    json.RawMessage `json:"metadata"`
	AssignedTo  *string         `json:"assigned_to"`
}

// AssetPatch has no CompanyID: ownership is fixed at creation.
type AssetPatch struct {
	Name        *string         `json:"name"`
	Type        *string         `json:"type"`
	Description NullableString  `json:"description"`
	Identifier  NullableString  `json:"identifier"`
	Status      *string         `json:"status"`
	Metadata    json.RawMessage `json:"metadata"`
	AssignedTo  NullableString  `json:"assigned_to"`
}

func (p AssetPatch) Empty() bool {
	return p.Name == nil && p.Type == nil && !p.Description.Set && !p.Identifier.Set &&
		p.Status == nil && p.Metadata == nil && !p.AssignedTo.Set
}
