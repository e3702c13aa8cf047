package catalog

// Image is a nested model demonstrating validated sub-structures.
type Image struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
}

// Item is the request body for item creation and update.
//
// Price is a pointer so that an explicit zero price is distinguishable
// from an omitted field: `required` on a plain float64 would reject 0.
// Tax is optional; absence propagates as nil rather than 0.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax,omitempty"`

	// TagL is an ordered sequence of tags, defaulting to empty.
	TagL []string `json:"tagL"`

	// TagS is a set of tags: duplicates are a validation error.
	TagS []string `json:"tagS" validate:"unique"`

	Image *Image `json:"image,omitempty" validate:"omitempty"`
}

// Validate applies the declared constraints.
func (i *Item) Validate() error {
	return validate.Struct(i)
}

// Normalize applies the declared defaults for omitted optional fields:
// both tag collections default to empty, not null.
func (i *Item) Normalize() {
	if i.TagL == nil {
		i.TagL = []string{}
	}
	if i.TagS == nil {
		i.TagS = []string{}
	}
}

// ItemOut is the response model for item creation: the validated input
// plus the computed price_with_tax, present only when tax was supplied
// and non-zero.
type ItemOut struct {
	Item
	PriceWithTax *float64 `json:"price_with_tax,omitempty"`
}

// Out shapes the item into its response model.
func (i *Item) Out() ItemOut {
	out := ItemOut{Item: *i}
	if i.Tax != nil && *i.Tax != 0 && i.Price != nil {
		total := *i.Price + *i.Tax
		out.PriceWithTax = &total
	}
	return out
}
