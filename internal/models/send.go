package models

import "time"

// SendProduct is an item in the send-flow catalog. Immutable once seeded;
// the send flow never edits or deletes products.
type SendProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Vendor      string   `json:"vendor"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Description string   `json:"description"`
	Thumbnails  []string `json:"thumbnails"`
}

// Clone copies the product including its variant slices, so an Order
// keeps its own copy even if the caller mutates the original.
func (p SendProduct) Clone() SendProduct {
	out := p
	out.Colors = append([]string(nil), p.Colors...)
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Thumbnails = append([]string(nil), p.Thumbnails...)

	return out
}

func (p SendProduct) HasColor(color string) bool {
	return contains(p.Colors, color)
}

func (p SendProduct) HasSize(size string) bool {
	return contains(p.Sizes, size)
}

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}

	return false
}

type SendSortOption string

const (
	SendSortDefault   SendSortOption = "default"
	SendSortPriceAsc  SendSortOption = "price_asc"
	SendSortPriceDesc SendSortOption = "price_desc"
	SendSortNameAsc   SendSortOption = "name_asc"
)

// SendFilters is the filter state of the send-flow browse view. Empty
// Categories/Vendors selections mean "all", not "none".
type SendFilters struct {
	Categories []string       `json:"categories"`
	Vendors    []string       `json:"vendors"`
	PriceMin   float64        `json:"price_min"`
	PriceMax   float64        `json:"price_max"`
	SearchTerm string         `json:"search_term"`
	SortBy     SendSortOption `json:"sort_by"`
}

// Phase is the single active step of the send-flow workflow.
type Phase string

const (
	PhaseBrowse    Phase = "browse"
	PhaseDetail    Phase = "detail"
	PhaseRecipient Phase = "recipient"
	PhaseSuccess   Phase = "success"
)

// RecipientForm is the in-progress recipient draft. Company and the
// second address line are optional; everything else is required.
type RecipientForm struct {
	RecipientEmail   string `json:"recipient_email" validate:"required,email"`
	RecipientName    string `json:"recipient_name" validate:"required"`
	RecipientCompany string `json:"recipient_company"`
	AddressLine1     string `json:"address_line1" validate:"required"`
	AddressLine2     string `json:"address_line2"`
	Country          string `json:"country" validate:"required"`
	City             string `json:"city" validate:"required"`
	State            string `json:"state" validate:"required"`
	ZipCode          string `json:"zip_code" validate:"required"`
}

// RecipientFormPatch carries partial form updates; nil fields are left as-is.
type RecipientFormPatch struct {
	RecipientEmail   *string `json:"recipient_email,omitempty"`
	RecipientName    *string `json:"recipient_name,omitempty"`
	RecipientCompany *string `json:"recipient_company,omitempty"`
	AddressLine1     *string `json:"address_line1,omitempty"`
	AddressLine2     *string `json:"address_line2,omitempty"`
	Country          *string `json:"country,omitempty"`
	City             *string `json:"city,omitempty"`
	State            *string `json:"state,omitempty"`
	ZipCode          *string `json:"zip_code,omitempty"`
}

// Apply shallow-merges the patch into the form.
func (f RecipientForm) Apply(patch RecipientFormPatch) RecipientForm {
	if patch.RecipientEmail != nil {
		f.RecipientEmail = *patch.RecipientEmail
	}
	if patch.RecipientName != nil {
		f.RecipientName = *patch.RecipientName
	}
	if patch.RecipientCompany != nil {
		f.RecipientCompany = *patch.RecipientCompany
	}
	if patch.AddressLine1 != nil {
		f.AddressLine1 = *patch.AddressLine1
	}
	if patch.AddressLine2 != nil {
		f.AddressLine2 = *patch.AddressLine2
	}
	if patch.Country != nil {
		f.Country = *patch.Country
	}
	if patch.City != nil {
		f.City = *patch.City
	}
	if patch.State != nil {
		f.State = *patch.State
	}
	if patch.ZipCode != nil {
		f.ZipCode = *patch.ZipCode
	}

	return f
}

// Order is a confirmed send. Append-only; never mutated or deleted.
type Order struct {
	ID            string      `json:"id"`
	Product       SendProduct `json:"product"`
	SelectedColor string      `json:"selected_color"`
	SelectedSize  string      `json:"selected_size"`
	RecipientForm
	CreatedAt time.Time `json:"created_at"`
}

// SendSnapshot is the full read surface of the send-flow store. Exactly
// one Phase is active; SelectedProduct is non-nil in Detail and Recipient.
type SendSnapshot struct {
	Products        []SendProduct `json:"products"`
	Orders          []Order       `json:"orders"`
	Filters         SendFilters   `json:"filters"`
	Phase           Phase         `json:"phase"`
	SelectedProduct *SendProduct  `json:"selected_product,omitempty"`
	SelectedColor   string        `json:"selected_color"`
	SelectedSize    string        `json:"selected_size"`
	RecipientForm   RecipientForm `json:"recipient_form"`
}
