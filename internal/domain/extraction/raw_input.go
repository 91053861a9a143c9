package extraction

import "github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"

// RawInput is the closed union over the two raw-input forms: a standalone
// Extractor sitting on one node, and a ResourceWell composite of one
// pressurizer and several satellites.
type RawInput interface {
	ID() string
	Item() catalog.Item

	// QuantityPerMin returns the extraction rate in items per minute.
	QuantityPerMin() float64

	// PowerDraw returns the input's draw in MW.
	PowerDraw() float64

	isRawInput()
}

var (
	_ RawInput = (*Extractor)(nil)
	_ RawInput = (*ResourceWell)(nil)
)

// Extractor is a single extraction machine on one resource node. The yield
// is the class base rate scaled by node purity where the class reads it.
type Extractor struct {
	id            string
	extractorType catalog.ExtractorType
	item          catalog.Item
	purity        catalog.Purity
}

// NewExtractor validates extractor/item compatibility and purity presence:
// purity-reading classes require a grade, others reject one. Pass an empty
// purity for classes that ignore it.
func NewExtractor(id string, extractorType catalog.ExtractorType, item catalog.Item, purity catalog.Purity) (*Extractor, error) {
	if !catalog.CanExtract(extractorType, item) {
		return nil, NewErrIncompatibleResource(string(extractorType), string(item))
	}

	spec := catalog.ExtractorSpecFor(extractorType)
	if spec.UsesPurity {
		if purity == "" {
			return nil, NewErrPurityRequired(string(extractorType))
		}
		if !catalog.IsValidPurity(purity) {
			return nil, NewErrInvalidPurity(string(purity))
		}
	} else if purity != "" {
		return nil, NewErrPurityNotSupported(string(extractorType))
	}

	return &Extractor{id: id, extractorType: extractorType, item: item, purity: purity}, nil
}

func (e *Extractor) ID() string                           { return e.id }
func (e *Extractor) ExtractorType() catalog.ExtractorType { return e.extractorType }
func (e *Extractor) Item() catalog.Item                   { return e.item }

// Purity returns the node purity, or false for classes that ignore it.
func (e *Extractor) Purity() (catalog.Purity, bool) {
	if e.purity == "" {
		return "", false
	}
	return e.purity, true
}

func (e *Extractor) QuantityPerMin() float64 {
	spec := catalog.ExtractorSpecFor(e.extractorType)
	rate := spec.BaseRatePerMin
	if spec.UsesPurity {
		rate *= e.purity.Multiplier()
	}
	return rate
}

func (e *Extractor) PowerDraw() float64 {
	return catalog.ExtractorSpecFor(e.extractorType).BasePowerMW
}

func (e *Extractor) isRawInput() {}
