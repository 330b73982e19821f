package view

import "github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"

// Page names.
const (
	PageHome          = "home"
	PageProducts      = "products"
	PageVision        = "vision"
	PageContact       = "contact"
	PageContactSent   = "contact_sent"
	PageLogin         = "login"
	PageAdmin         = "admin"
	PageAdminProducts = "admin_products"
	PageEditProduct   = "edit_product"
	PageMessages      = "messages"
	PageError         = "error"
)

type HomeData struct {
	Total      int
	Categories int
	Materials  int
	Unread     int64
}

type ProductItem struct {
	model.Product
	BuyLink string
}

type ProductsData struct {
	Query      string
	Category   string
	Material   string
	Categories []string
	Materials  []string
	Items      []ProductItem
}

type ContactData struct {
	Error string
	Name  string
	Email string
	Body  string
}

type LoginData struct {
	Error    string
	Username string
}

type AdminData struct {
	Unread          int64
	WhatsAppEnabled bool
}

// ProductForm holds the values shown in the add and edit forms.
type ProductForm struct {
	ID           int64
	Name         string
	Category     string
	Material     string
	Price        int
	Stock        int
	LeadTimeDays int
	PhotoURL     string
	STLURL       string
}

func ProductFormFrom(p model.Product) ProductForm {
	return ProductForm{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Material:     p.Material,
		Price:        p.Price,
		Stock:        p.Stock,
		LeadTimeDays: p.LeadTimeDays,
		PhotoURL:     p.PhotoURL,
		STLURL:       p.STLURL,
	}
}

type AdminProductsData struct {
	Error     string
	Form      ProductForm
	Materials []string
	Products  []model.Product
}

type EditProductData struct {
	Found     bool
	Error     string
	Form      ProductForm
	Materials []string
}

type MessagesData struct {
	Unread   int64
	Messages []model.Message
}

type ErrorData struct {
	StatusCode int
	Message    string
}
