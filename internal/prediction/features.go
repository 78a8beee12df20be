package prediction

import (
	"errors"
	"fmt"

	"house-price/internal/model"
	"house-price/internal/tier"
)

// InvalidInputMessage is shown when the form values cannot be priced
const InvalidInputMessage = "Please provide valid inputs for all fields."

var ErrInvalidInput = errors.New(InvalidInputMessage)

// Column names the model was trained with
const (
	ColumnSquareFt          = "SQUARE_FT"
	ColumnBHKNo             = "BHK_NO."
	ColumnCityTier          = "City_Tier"
	ColumnReadyToMove       = "READY_TO_MOVE"
	ColumnRERA              = "RERA"
	ColumnResale            = "RESALE"
	ColumnUnderConstruction = "UNDER_CONSTRUCTION"
)

// FeatureColumns is the fixed column order of a FeatureRow
var FeatureColumns = []string{
	ColumnSquareFt,
	ColumnBHKNo,
	ColumnCityTier,
	ColumnReadyToMove,
	ColumnRERA,
	ColumnResale,
	ColumnUnderConstruction,
}

// Input holds the values the user types into the form
type Input struct {
	AreaSqft    float64
	Bedrooms    int
	ReadyToMove bool
}

// FeatureRow is the single row sent to the model. RERA, RESALE and
// UNDER_CONSTRUCTION are not collected and always zero.
type FeatureRow struct {
	SquareFt          float64 `json:"SQUARE_FT"`
	BHKNo             int     `json:"BHK_NO."`
	CityTier          int     `json:"City_Tier"`
	ReadyToMove       int     `json:"READY_TO_MOVE"`
	RERA              int     `json:"RERA"`
	Resale            int     `json:"RESALE"`
	UnderConstruction int     `json:"UNDER_CONSTRUCTION"`
}

// Assemble validates the form input and builds the model row
func Assemble(in Input, t tier.Tier) (FeatureRow, error) {
	if in.AreaSqft <= 0 || in.Bedrooms <= 0 {
		return FeatureRow{}, fmt.Errorf("%w (area=%v, bedrooms=%d)", ErrInvalidInput, in.AreaSqft, in.Bedrooms)
	}

	ready := 0
	if in.ReadyToMove {
		ready = 1
	}

	return FeatureRow{
		SquareFt:          in.AreaSqft,
		BHKNo:             in.Bedrooms,
		CityTier:          int(t),
		ReadyToMove:       ready,
		RERA:              0,
		Resale:            0,
		UnderConstruction: 0,
	}, nil
}

// Values returns the row in FeatureColumns order
func (r FeatureRow) Values() []float64 {
	return []float64{
		r.SquareFt,
		float64(r.BHKNo),
		float64(r.CityTier),
		float64(r.ReadyToMove),
		float64(r.RERA),
		float64(r.Resale),
		float64(r.UnderConstruction),
	}
}

// Row converts the feature row into the model's named-column input
func (r FeatureRow) Row() model.Row {
	values := r.Values()
	row := make(model.Row, len(FeatureColumns))
	for i, name := range FeatureColumns {
		row[name] = values[i]
	}
	return row
}

// CheckSchema reports columns the model expects that a FeatureRow cannot supply
func CheckSchema(r model.Regressor) error {
	known := make(map[string]struct{}, len(FeatureColumns))
	for _, c := range FeatureColumns {
		known[c] = struct{}{}
	}

	var missing []string
	for _, f := range r.Features() {
		if _, ok := known[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("model expects columns the form cannot supply: %v", missing)
	}
	return nil
}
