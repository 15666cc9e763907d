// ABOUTME: Typed payloads for the storefront catalog and auth API
// ABOUTME: Mirrors the JSON shapes returned by the remote service

package api

// User is the identity payload returned by the auth endpoint.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Image     string `json:"image,omitempty"`
}

// LoginResult is the normalized outcome of a login call.
// Exactly one of (User+Token) or Error is populated; a transport
// failure is returned as a Go error instead.
type LoginResult struct {
	User  *User
	Token string
	Error string
}

// ProductDimensions holds physical product dimensions.
type ProductDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// ProductReview is a single customer review nested in a product.
type ProductReview struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	Date          string  `json:"date"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail"`
}

// ProductMeta holds catalog bookkeeping fields.
type ProductMeta struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Barcode   string `json:"barcode"`
	QRCode    string `json:"qrCode"`
}

// Product is a single catalog entry.
type Product struct {
	ID                   int               `json:"id"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Price                float64           `json:"price"`
	DiscountPercentage   float64           `json:"discountPercentage"`
	Rating               float64           `json:"rating"`
	Stock                int               `json:"stock"`
	Brand                string            `json:"brand"`
	Category             string            `json:"category"`
	Thumbnail            string            `json:"thumbnail"`
	Images               []string          `json:"images"`
	Tags                 []string          `json:"tags"`
	SKU                  string            `json:"sku"`
	Weight               float64           `json:"weight"`
	Dimensions           ProductDimensions `json:"dimensions"`
	WarrantyInformation  string            `json:"warrantyInformation"`
	ShippingInformation  string            `json:"shippingInformation"`
	AvailabilityStatus   string            `json:"availabilityStatus"`
	Reviews              []ProductReview   `json:"reviews"`
	ReturnPolicy         string            `json:"returnPolicy"`
	MinimumOrderQuantity int               `json:"minimumOrderQuantity"`
	Meta                 ProductMeta       `json:"meta"`
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
