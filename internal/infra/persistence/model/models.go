// Package model holds the GORM table mappings for the resource store.
package model

// All lists every table model, in migration order.
func All() []any {
	return []any{
		&ServiceModel{},
		&BookingModel{},
		&ContactModel{},
	}
}
