package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Medication maps to the medication table. Indication is the free-text
// description the semantic matcher indexes.
type Medication struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	ActiveIngredient string    `db:"active_ingredient" json:"active_ingredient"`
	TherapeuticClass string    `db:"therapeutic_class" json:"therapeutic_class"`
	Indication       string    `db:"indication" json:"indication"`
	Contraindication *string   `db:"contraindication" json:"contraindication,omitempty"`
	Priority         int       `db:"priority" json:"priority"`
	Active           bool      `db:"active" json:"active"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
