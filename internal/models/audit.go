package models

import (
	"encoding/json"
	"time"
)

// EntityType names the kind of record an audit entry describes.
type EntityType string

const (
	EntityCompany EntityType = "company"
	EntityUser    EntityType = "user"
	EntityAsset   EntityType = "asset"
	EntityAccess  EntityType = "access"
)

var EntityTypes = []EntityType{EntityCompany, EntityUser, EntityAsset, EntityAccess}

func (e EntityType) Valid() bool {
	for _, v := range EntityTypes {
		if e == v {
			return true
		}
	}
	return false
}

// AuditAction is the closed set of mutations recorded in the audit log.
// Grant and revoke apply only to EntityAccess.
type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
	ActionGrant  AuditAction = "grant"
	ActionRevoke AuditAction = "revoke"
)

var AuditActions = []AuditAction{ActionCreate, ActionUpdate, ActionDelete, ActionGrant, ActionRevoke}

func (a AuditAction) Valid() bool {
	for _, v := range AuditActions {
		if a == v {
			return true
		}
	}
	return false
}

// AuditEntry represents one audit log row. Entries are never updated or deleted.
type AuditEntry struct {
	ID         string          `json:"id"`
	EntityType EntityType      `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Action     AuditAction     `json:"action"`
	CompanyID  *string         `json:"company_id"`
	Actor      *string         `json:"actor"`
	Changes    json.RawMessage `json:"changes"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Change is one field transition in an update payload.
type Change struct {
	From any `json:"from"`
	To   any `json:"to"`
}
