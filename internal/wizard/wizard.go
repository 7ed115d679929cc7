// Package wizard is the state machine behind the three-step "add product"
// form: basic info, variants, review. A Draft holds everything the admin has
// entered so far; nothing reaches the catalog service until the final
// submit.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"blackshop/internal/models"
)

var (
	// ErrNotFinalStep is returned by Submit before the review step.
	ErrNotFinalStep = errors.New("wizard: submit is only allowed on the review step")

	// ErrIndexOutOfRange is returned when a variant, attribute or image
	// index does not exist.
	ErrIndexOutOfRange = errors.New("wizard: index out of range")

	// ErrInvalidPrice is wrapped by *FieldError for unparsable prices.
	ErrInvalidPrice = errors.New("wizard: invalid price")

	// ErrInvalidStock is wrapped by *FieldError for unparsable stock.
	ErrInvalidStock = errors.New("wizard: invalid stock")
)

// DefaultAttribute is the attribute every new variant starts with.
const DefaultAttribute = "Color"

// Step is a wizard page.
type Step int

const (
	StepBasic    Step = 1
	StepVariants Step = 2
	StepReview   Step = 3
)

func (s Step) String() string {
	switch s {
	case StepBasic:
		return "basic"
	case StepVariants:
		return "variants"
	case StepReview:
		return "review"
	default:
		return "step(" + strconv.Itoa(int(s)) + ")"
	}
}

// Image is an uploaded picture, kept only as its preview.
type Image struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Preview string `json:"preview"` // data: URL of the JPEG preview
}

// Attribute is a free-form name/value pair on a variant.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant holds raw form input; numbers are parsed only on submit.
type Variant struct {
	SKU        string      `json:"sku"`
	Price      string      `json:"price"`
	Stock      string      `json:"stock"`
	Attributes []Attribute `json:"attributes"`
	Images     []Image     `json:"images"`
}

// Basic is the first wizard page.
type Basic struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Brand        string  `json:"brand"`
	PrimaryImage []Image `json:"primaryImage"`
}

// Draft is the whole wizard state.
type Draft struct {
	ID        string    `json:"id"`
	Step      Step      `json:"step"`
	Basic     Basic     `json:"basic"`
	Variants  []Variant `json:"variants"`
	CreatedAt time.Time `json:"createdAt"`
}

// New returns a draft on the first step with one empty variant.
func New(id string, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Step:      StepBasic,
		Variants:  []Variant{newVariant()},
		CreatedAt: now,
	}
}

func newVariant() Variant {
	return Variant{Attributes: []Attribute{{Name: DefaultAttribute}}}
}

// Next advances one step, stopping at the review step. No field is
// validated before advancing.
func (d *Draft) Next() {
	if d.Step < StepReview {
		d.Step++
	}
}

// Back returns one step, stopping at the first.
func (d *Draft) Back() {
	if d.Step > StepBasic {
		d.Step--
	}
}

// IsFirst reports whether the draft is on the first step.
func (d *Draft) IsFirst() bool { return d.Step <= StepBasic }

// IsLast reports whether the draft is on the review step.
func (d *Draft) IsLast() bool { return d.Step >= StepReview }

// Submit checks that the draft may be submitted.
func (d *Draft) Submit() error {
	if d.Step != StepReview {
		return ErrNotFinalStep
	}
	return nil
}

// ---------- Variants ----------

// AddVariant appends an empty variant.
func (d *Draft) AddVariant() {
	d.Variants = append(d.Variants, newVariant())
}

// RemoveVariant deletes variant i. Removing the last one is allowed.
func (d *Draft) RemoveVariant(i int) error {
	if i < 0 || i >= len(d.Variants) {
		return ErrIndexOutOfRange
	}
	d.Variants = append(d.Variants[:i], d.Variants[i+1:]...)
	return nil
}

// Variant returns a pointer to variant i for in-place edits.
func (d *Draft) Variant(i int) (*Variant, error) {
	if i < 0 || i >= len(d.Variants) {
		return nil, ErrIndexOutOfRange
	}
	return &d.Variants[i], nil
}

// AddAttribute appends an empty attribute to variant v.
func (d *Draft) AddAttribute(v int) error {
	variant, err := d.Variant(v)
	if err != nil {
		return err
	}
	variant.Attributes = append(variant.Attributes, Attribute{})
	return nil
}

// RemoveAttribute deletes attribute a of variant v.
func (d *Draft) RemoveAttribute(v, a int) error {
	variant, err := d.Variant(v)
	if err != nil {
		return err
	}
	if a < 0 || a >= len(variant.Attributes) {
		return ErrIndexOutOfRange
	}
	variant.Attributes = append(variant.Attributes[:a], variant.Attributes[a+1:]...)
	return nil
}

// ---------- Images ----------

// AddImages appends images to variant v, or to the primary images when v
// is negative.
func (d *Draft) AddImages(v int, imgs ...Image) error {
	if v < 0 {
		d.Basic.PrimaryImage = append(d.Basic.PrimaryImage, imgs...)
		return nil
	}
	variant, err := d.Variant(v)
	if err != nil {
		return err
	}
	variant.Images = append(variant.Images, imgs...)
	return nil
}

// RemoveImage deletes image i of variant v, or of the primary images when
// v is negative.
func (d *Draft) RemoveImage(v, i int) error {
	images := &d.Basic.PrimaryImage
	if v >= 0 {
		variant, err := d.Variant(v)
		if err != nil {
			return err
		}
		images = &variant.Images
	}
	if i < 0 || i >= len(*images) {
		return ErrIndexOutOfRange
	}
	*images = append((*images)[:i], (*images)[i+1:]...)
	return nil
}

// ---------- Submission ----------

// FieldError reports which variant holds an unparsable number.
type FieldError struct {
	Variant int // zero-based
	Field   string
	Value   string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("variant %d %s %q: %v", e.Variant+1, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Product converts the draft into a create-product request. Prices must be
// present and decimal; an empty stock counts as zero. Signs are not checked,
// the catalog service owns those rules. Image previews are not
// uploaded anywhere, so the image URL fields stay empty.
func (d *Draft) Product() (models.CreateProductInput, error) {
	in := models.CreateProductInput{
		Name:        strings.TrimSpace(d.Basic.Name),
		Category:    d.Basic.Category,
		Brand:       d.Basic.Brand,
		Description: d.Basic.Description,
		Variants:    make([]models.Variant, 0, len(d.Variants)),
	}

	for i, v := range d.Variants {
		price, err := decimal.NewFromString(strings.TrimSpace(v.Price))
		if err != nil {
			return models.CreateProductInput{}, &FieldError{Variant: i, Field: "price", Value: v.Price, Err: ErrInvalidPrice}
		}

		stock := 0
		if s := strings.TrimSpace(v.Stock); s != "" {
			stock, err = strconv.Atoi(s)
			if err != nil {
				return models.CreateProductInput{}, &FieldError{Variant: i, Field: "stock", Value: v.Stock, Err: ErrInvalidStock}
			}
		}

		mv := models.Variant{SKU: strings.TrimSpace(v.SKU), Price: price, Stock: stock}
		for _, a := range v.Attributes {
			if a.Name == "" && a.Value == "" {
				continue
			}
			mv.Attributes = append(mv.Attributes, models.Attribute{Name: a.Name, Value: a.Value})
		}
		in.Variants = append(in.Variants, mv)
	}
	return in, nil
}

// Summary is the log-friendly shape of a submitted draft.
func (d *Draft) Summary() map[string]any {
	variants := make([]map[string]any, len(d.Variants))
	for i, v := range d.Variants {
		variants[i] = map[string]any{
			"sku":        v.SKU,
			"price":      v.Price,
			"stock":      v.Stock,
			"attributes": v.Attributes,
			"images":     len(v.Images),
		}
	}
	return map[string]any{
		"id":            d.ID,
		"name":          d.Basic.Name,
		"description":   d.Basic.Description,
		"category":      d.Basic.Category,
		"brand":         d.Basic.Brand,
		"primaryImages": len(d.Basic.PrimaryImage),
		"variants":      variants,
	}
}
