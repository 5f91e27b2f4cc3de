// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a bilingual catalog product
type Product struct {
	ID            string         `gorm:"primaryKey;size:64" json:"id"`
	NameAr        string         `gorm:"not null;size:255" json:"name_ar"`
	NameEn        string         `gorm:"not null;size:255" json:"name_en"`
	DescriptionAr string         `gorm:"type:text" json:"description_ar,omitempty"`
	DescriptionEn string         `gorm:"type:text" json:"description_en,omitempty"`
	Price         int64          `gorm:"not null" json:"price"` // Price in halalas
	OldPrice      int64          `json:"old_price,omitempty"`   // Original price for discount display
	ImageURL      string         `gorm:"size:500" json:"image_url"`
	Category      string         `gorm:"index;size:100" json:"category"`
	BrandAr       string         `gorm:"size:255" json:"brand_ar,omitempty"`
	BrandEn       string         `gorm:"size:255" json:"brand_en,omitempty"`
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	TrackQuantity bool           `gorm:"default:true" json:"track_quantity"`
	IsNew         bool           `gorm:"default:false" json:"is_new"`
	IsFeatured    bool           `gorm:"default:false" json:"is_featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// Name returns the display name for the given locale
func (p *Product) Name(locale string) string {
	if locale == "en" && p.NameEn != "" {
		return p.NameEn
	}
	return p.NameAr
}

// Brand returns the display brand for the given locale
func (p *Product) Brand(locale string) string {
	if locale == "en" && p.BrandEn != "" {
		return p.BrandEn
	}
	if p.BrandAr != "" {
		return p.BrandAr
	}
	return p.BrandEn
}

// HasDiscount reports whether the product carries a crossed-out original price
func (p *Product) HasDiscount() bool {
	return p.OldPrice > p.Price && p.Price > 0
}

// Category represents a bilingual storefront category
type Category struct {
	ID            string        `gorm:"primaryKey;size:64" json:"id"`
	NameAr        string        `gorm:"not null;size:255" json:"name_ar"`
	NameEn        string        `gorm:"not null;size:255" json:"name_en"`
	Icon          string        `gorm:"size:50" json:"icon,omitempty"`
	SortOrder     int           `gorm:"default:0" json:"sort_order"`
	IsActive      bool          `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sub_categories,omitempty"`
}

// TableName overrides the table name
func (Category) TableName() string {
	return "categories"
}

// SubCategory represents a navigable subsection of a category
type SubCategory struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID string `gorm:"not null;index;size:64" json:"category_id"`
	NameAr     string `gorm:"not null;size:255" json:"name_ar"`
	NameEn     string `gorm:"not null;size:255" json:"name_en"`
	Href       string `gorm:"size:500" json:"href"`
}

// TableName overrides the table name
func (SubCategory) TableName() string {
	return "sub_categories"
}
