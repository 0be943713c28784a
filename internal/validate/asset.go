package validate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/models"
)

var emptyObject = json.RawMessage(`{}`)

func NewAsset(in models.AssetInput) (models.Asset, error) {
	a := models.Asset{
		CompanyID:   strings.TrimSpace(in.CompanyID),
		Name:        strings.TrimSpace(in.Name),
		Type:        models.AssetType(strings.TrimSpace(in.Type)),
		Description: trimOptional(in.Description),
		Identifier:  trimOptional(in.Identifier),
		Status:      models.AssetStatus(strings.TrimSpace(in.Status)),
		Metadata:    in.Metadata,
		AssignedTo:  trimOptional(in.AssignedTo),
	}
	if a.Status == "" {
		a.Status = models.AssetActive
	}
	if len(bytes.TrimSpace(a.Metadata)) == 0 || bytes.Equal(bytes.TrimSpace(a.Metadata), []byte("null")) {
		a.Metadata = emptyObject
	}
	err := assetRules(a)
	return a, err
}

// MergeAsset applies p over existing. A null metadata value resets it to {}.
func MergeAsset(existing models.Asset, p models.AssetPatch) (models.Asset, error) {
	if p.Empty() {
		return existing, noFields()
	}
	a := existing
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		a.Type = models.AssetType(strings.TrimSpace(*p.Type))
	}
	if p.Description.Set {
		a.Description = trimOptional(p.Description.Value)
	}
	if p.Identifier.Set {
		a.Identifier = trimOptional(p.Identifier.Value)
	}
	if p.Status != nil {
		a.Status = models.AssetStatus(strings.TrimSpace(*p.Status))
	}
	if p.Metadata != nil {
		if bytes.Equal(bytes.TrimSpace(p.Metadata), []byte("null")) {
			a.Metadata = emptyObject
		} else {
			a.Metadata = p.Metadata
		}
	}
	if p.AssignedTo.Set {
		a.AssignedTo = trimOptional(p.AssignedTo.Value)
	}
	return a, assetRules(a)
}

func assetRules(a models.Asset) error {
	var col apperr.Collector
	check(&col, "company_id", a.CompanyID, "required,uuid")
	check(&col, "name", a.Name, "required,"+maxLen(maxNameLen))
	check(&col, "type", string(a.Type), "required,"+oneOf(models.AssetTypes))
	if a.Description != nil {
		check(&col, "description", *a.Description, maxLen(maxDescriptionLen))
	}
	if a.Identifier != nil {
		check(&col, "identifier", *a.Identifier, maxLen(maxNameLen))
	}
	check(&col, "status", string(a.Status), "required,"+oneOf(models.AssetStatuses))
	if !metadataObject(a.Metadata) {
		col.Add("metadata", "must be a JSON object")
	}
	checkOptionalID(&col, "assigned_to", a.AssignedTo)
	return col.Err()
}
