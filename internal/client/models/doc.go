// Package models defines the HR desk entities, the roles and request
// statuses they carry, and State, the blob persisted by the store.
package models
