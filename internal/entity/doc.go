// Package entity owns the canonical location and organizer registries.
//
// Registries are file-backed JSON maps loaded once into memory and mutated
// only through registry methods; callers flush changes explicitly with Save.
// Entities are never hard-deleted, only updated or verified, so event records
// can reference them indefinitely. IDs are deterministic slugs (loc_*, org_*)
// derived from the entity name, which keeps repeated registrations of the
// same venue idempotent.
package entity
