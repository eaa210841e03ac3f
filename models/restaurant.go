package models

import "time"

// Category groups restaurants under a browsable slug. Categories are
// created on demand from owner-supplied names and never deleted when the
// last restaurant leaves them.
type Category struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string       `json:"slug" gorm:"uniqueIndex;not null"`
	CoverImage  string       `json:"cover_image"`
	Restaurants []Restaurant `json:"restaurants,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Restaurant struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	OwnerID       uint       `json:"owner_id" gorm:"not null"`
	Owner         User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CategoryID    *uint      `json:"category_id"`
	Category      *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name          string     `json:"name" gorm:"not null"`
	Address       string     `json:"address"`
	CoverImage    string     `json:"cover_image"`
	IsPromoted    bool       `json:"is_promoted" gorm:"default:false"`
	PromotedUntil *time.Time `json:"promoted_until"`
	Menu          []Dish     `json:"menu,omitempty" gorm:"foreignKey:RestaurantID"`
	Orders        []Order    `json:"orders,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DishChoice is one selectable value under a DishOption, e.g. "Large" under
// "Size". A zero Cost means the choice is free.
type DishChoice struct {
	Item string  `json:"item"`
	Cost float64 `json:"cost,omitempty"`
}

// DishOption is a named customization on a dish. Option names (and choice
// items within an option) are expected to be unique; lookups take the first
// match.
type DishOption struct {
	Name    string       `json:"name"`
	Cost    float64      `json:"cost,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

type Dish struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	RestaurantID uint         `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant   `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Name         string       `json:"name" gorm:"not null"`
	Description  string       `json:"description"`
	Photo        string       `json:"photo"`
	Price        float64      `json:"price" gorm:"not null"`
	Options      []DishOption `json:"options" gorm:"serializer:json"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FindOption returns the dish option matching name, or nil.
func (d *Dish) FindOption(name string) *DishOption {
	for i := range d.Options {
		if d.Options[i].Name == name {
			return &d.Options[i]
		}
	}
	return nil
}

// FindChoice returns the choice matching item, or nil.
func (o *DishOption) FindChoice(item string) *DishChoice {
	for i := range o.Choices {
		if o.Choices[i].Item == item {
			return &o.Choices[i]
		}
	}
	return nil
}
