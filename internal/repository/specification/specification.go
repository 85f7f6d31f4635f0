package specification

import "gorm.io/gorm"

// Specification is a composable query clause. Repositories fold a set of
// them over the base query before executing it.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
