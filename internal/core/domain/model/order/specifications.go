package order

import (
	"errors"
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// ErrSpecificationsIsNotConstructed is returned when Specifications were not created via NewSpecifications.
var ErrSpecificationsIsNotConstructed = errors.New("Specifications must be created via NewSpecifications constructor")

// MinQuantity is the smallest print run the shop accepts.
const MinQuantity = 1

// PrintType is the kind of product being printed.
type PrintType string

const (
	BusinessCards PrintType = "Business Cards"
	Flyers        PrintType = "Flyers"
	Brochures     PrintType = "Brochures"
	Posters       PrintType = "Posters"
	Banners       PrintType = "Banners"
)

// PrintTypes lists the accepted print types in display order.
func PrintTypes() []PrintType {
	return []PrintType{BusinessCards, Flyers, Brochures, Posters, Banners}
}

// Size is the finished product size.
type Size string

const (
	StandardSize Size = "Standard"
	LargeSize    Size = "Large"
	CustomSize   Size = "Custom"
)

// Sizes lists the accepted sizes in display order.
func Sizes() []Size {
	return []Size{StandardSize, LargeSize, CustomSize}
}

// PaperType is the stock the job is printed on.
type PaperType string

const (
	MattePaper    PaperType = "Matte"
	GlossyPaper   PaperType = "Glossy"
	RecycledPaper PaperType = "Recycled"
	PremiumPaper  PaperType = "Premium"
)

// PaperTypes lists the accepted paper types in display order.
func PaperTypes() []PaperType {
	return []PaperType{MattePaper, GlossyPaper, RecycledPaper, PremiumPaper}
}

// ParsePrintType matches s against the print type options, ignoring case and surrounding spaces.
func ParsePrintType(s string) (PrintType, error) {
	return parseOption("type", s, PrintTypes())
}

// ParseSize matches s against the size options, ignoring case and surrounding spaces.
func ParseSize(s string) (Size, error) {
	return parseOption("size", s, Sizes())
}

// ParsePaperType matches s against the paper type options, ignoring case and surrounding spaces.
func ParsePaperType(s string) (PaperType, error) {
	return parseOption("paper type", s, PaperTypes())
}

func parseOption[T ~string](param, s string, options []T) (T, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	names := make([]string, 0, len(options))
	for _, option := range options {
		if strings.EqualFold(string(option), trimmed) {
			return option, nil
		}
		names = append(names, string(option))
	}
	return "", errs.NewValueIsInvalidErrorWithCause(
		param,
		fmt.Errorf("%q is not one of %s", trimmed, strings.Join(names, ", ")),
	)
}

// Specifications describes what is printed: product type, size, run length,
// paper and whether the job is in color.
type Specifications struct {
	printType PrintType
	size      Size
	quantity  int
	paperType PaperType
	color     bool

	guard guard.ConstructorGuard
}

// NewSpecifications validates every field and reports all failures at once.
func NewSpecifications(printType, size string, quantity int, paperType string, color bool) (Specifications, error) {
	s := Specifications{
		color: color,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setPrintType(printType),
		s.setSize(size),
		s.setQuantity(quantity),
		s.setPaperType(paperType),
	); err != nil {
		return Specifications{}, err
	}

	return s, nil
}

// Validate ensures the value was built through NewSpecifications.
func (s Specifications) Validate() error {
	return s.guard.Validate(ErrSpecificationsIsNotConstructed)
}

func (s Specifications) Type() PrintType {
	return s.printType
}

func (s Specifications) Size() Size {
	return s.size
}

func (s Specifications) Quantity() int {
	return s.quantity
}

func (s Specifications) PaperType() PaperType {
	return s.paperType
}

func (s Specifications) Color() bool {
	return s.color
}

// Input returns the raw form of s, suitable for editing and resubmission.
func (s Specifications) Input() SpecificationsInput {
	return SpecificationsInput{
		Type:      string(s.printType),
		Size:      string(s.size),
		Quantity:  s.quantity,
		PaperType: string(s.paperType),
		Color:     s.color,
	}
}

// merge applies the fields present in p on top of s.
func (s Specifications) merge(p SpecificationsPatch) (Specifications, error) {
	in := s.Input()
	if p.Type != nil {
		in.Type = *p.Type
	}
	if p.Size != nil {
		in.Size = *p.Size
	}
	if p.Quantity != nil {
		in.Quantity = *p.Quantity
	}
	if p.PaperType != nil {
		in.PaperType = *p.PaperType
	}
	if p.Color != nil {
		in.Color = *p.Color
	}
	return in.Build()
}

func (s *Specifications) setPrintType(v string) error {
	t, err := ParsePrintType(v)
	if err != nil {
		return err
	}
	s.printType = t
	return nil
}

func (s *Specifications) setSize(v string) error {
	size, err := ParseSize(v)
	if err != nil {
		return err
	}
	s.size = size
	return nil
}

func (s *Specifications) setQuantity(quantity int) error {
	if quantity < MinQuantity {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than or equal to %d", quantity, MinQuantity),
		)
	}
	s.quantity = quantity
	return nil
}

func (s *Specifications) setPaperType(v string) error {
	p, err := ParsePaperType(v)
	if err != nil {
		return err
	}
	s.paperType = p
	return nil
}
