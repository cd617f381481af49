package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("item title is required")
	ErrMissingOwner     = errors.New("owner email is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidPriceUnit = errors.New("invalid price unit")
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusBooked    Status = "Booked"
)

func (s Status) String() string { return string(s) }

type Category string

const (
	CategoryTools       Category = "Tools"
	CategoryBooks       Category = "Books"
	CategoryElectronics Category = "Electronics"
	CategoryKitchen     Category = "Kitchen"
	CategoryOther       Category = "Other"
)

// NormalizeCategory maps unknown category labels to Other rather than
// failing; listings come from free-form client input.
func NormalizeCategory(s string) Category {
	switch Category(s) {
	case CategoryTools, CategoryBooks, CategoryElectronics, CategoryKitchen:
		return Category(s)
	default:
		return CategoryOther
	}
}

type PriceUnit string

const (
	PriceUnitHour PriceUnit = "Hour"
	PriceUnitDay  PriceUnit = "Day"
)

func NewPriceUnit(s string) (PriceUnit, error) {
	switch PriceUnit(s) {
	case PriceUnitHour, PriceUnitDay:
		return PriceUnit(s), nil
	default:
		return "", ErrInvalidPriceUnit
	}
}

type Location struct {
	Longitude float64
	Latitude  float64
}

// Item is a physical object listed for lending. Booked status and
// returnTime move in lockstep with an approved borrow request.
type Item struct {
	id          uuid.UUID
	title       string
	description string
	category    Category
	price       float64
	priceUnit   PriceUnit
	status      Status
	location    Location
	ownerEmail  string
	returnTime  *time.Time
	createdAt   time.Time
}

func NewItem(
	title, description, category string,
	price float64,
	priceUnit PriceUnit,
	location Location,
	ownerEmail string,
	now time.Time,
) (*Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	ownerEmail = strings.TrimSpace(strings.ToLower(ownerEmail))
	if ownerEmail == "" {
		return nil, ErrMissingOwner
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Item{
		id:          uuid.New(),
		title:       title,
		description: description,
		category:    NormalizeCategory(category),
		price:       price,
		priceUnit:   priceUnit,
		status:      StatusAvailable,
		location:    location,
		ownerEmail:  ownerEmail,
		createdAt:   now,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	title, description string,
	category Category,
	price float64,
	priceUnit PriceUnit,
	status Status,
	location Location,
	ownerEmail string,
	returnTime *time.Time,
	createdAt time.Time,
) *Item {
	return &Item{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		price:       price,
		priceUnit:   priceUnit,
		status:      status,
		location:    location,
		ownerEmail:  ownerEmail,
		returnTime:  returnTime,
		createdAt:   createdAt,
	}
}

func (i *Item) IsBooked() bool {
	return i.status == StatusBooked
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) Title() string          { return i.title }
func (i *Item) Description() string    { return i.description }
func (i *Item) Category() Category     { return i.category }
func (i *Item) Price() float64         { return i.price }
func (i *Item) PriceUnit() PriceUnit   { return i.priceUnit }
func (i *Item) Status() Status         { return i.status }
func (i *Item) Location() Location     { return i.location }
func (i *Item) OwnerEmail() string     { return i.ownerEmail }
func (i *Item) ReturnTime() *time.Time { return i.returnTime }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }
