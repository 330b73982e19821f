package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/view"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/service"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/session"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/whatsapp"
)

type catalogHandler struct {
	*responder
	productSvc service.ProductService
	messageSvc service.MessageService
	whatsapp   whatsapp.Linker
}

func newCatalogHandler(
	rs *responder,
	productSvc service.ProductService,
	messageSvc service.MessageService,
	linker whatsapp.Linker,
) *catalogHandler {
	return &catalogHandler{
		responder:  rs,
		productSvc: productSvc,
		messageSvc: messageSvc,
		whatsapp:   linker,
	}
}

func (h *catalogHandler) Home(w http.ResponseWriter, r *http.Request, sess session.Session) {
	ctx := r.Context()

	products, err := h.productSvc.ListProducts(ctx, service.ListProductsParams{})
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service list products: %w", err))
		return
	}
	categories, err := h.productSvc.ListCategories(ctx)
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service list categories: %w", err))
		return
	}
	materials, err := h.productSvc.ListMaterials(ctx)
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service list materials: %w", err))
		return
	}

	data := view.HomeData{
		Total:      len(products),
		Categories: len(categories),
		Materials:  len(materials),
	}
	if sess.IsAdmin {
		data.Unread, err = h.messageSvc.CountUnread(ctx)
		if err != nil {
			h.handleError(w, r, sess, fmt.Errorf("message service count unread: %w", err))
			return
		}
	}

	h.render(w, r, http.StatusOK, view.PageHome, view.Page{Title: "Ana Sayfa", IsAdmin: sess.IsAdmin, Data: data})
}

func (h *catalogHandler) Products(w http.ResponseWriter, r *http.Request, sess session.Session) {
	ctx := r.Context()
	q := r.URL.Query()
	params := service.ListProductsParams{
		Query:    q.Get("q"),
		Category: q.Get("cat"),
		Material: q.Get("mat"),
	}

	products, err := h.productSvc.ListProducts(ctx, params)
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service list products: %w", err))
		return
	}
	categories, err := h.productSvc.ListCategories(ctx)
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service list categories: %w", err))
		return
	}
	materials, err := h.productSvc.ListMaterials(ctx)
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service list materials: %w", err))
		return
	}

	items := make([]view.ProductItem, 0, len(products))
	for _, p := range products {
		items = append(items, view.ProductItem{Product: p, BuyLink: h.whatsapp.BuyLink(p)})
	}

	h.render(w, r, http.StatusOK, view.PageProducts, view.Page{
		Title:   "Ürünler",
		IsAdmin: sess.IsAdmin,
		Data: view.ProductsData{
			Query:      params.Query,
			Category:   params.Category,
			Material:   params.Material,
			Categories: categories,
			Materials:  materials,
			Items:      items,
		},
	})
}

func (h *catalogHandler) Vision(w http.ResponseWriter, r *http.Request, sess session.Session) {
	h.render(w, r, http.StatusOK, view.PageVision, view.Page{Title: "Vizyon & Misyon", IsAdmin: sess.IsAdmin})
}

func (h *catalogHandler) Contact(w http.ResponseWriter, r *http.Request, sess session.Session) {
	h.render(w, r, http.StatusOK, view.PageContact, view.Page{
		Title:   "İletişim",
		IsAdmin: sess.IsAdmin,
		Data:    view.ContactData{},
	})
}

func (h *catalogHandler) ContactSend(w http.ResponseWriter, r *http.Request, sess session.Session) {
	params := service.CreateMessageParams{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
		Body:  r.PostFormValue("msg"),
	}

	if _, err := h.messageSvc.CreateMessage(r.Context(), params); err != nil {
		if errors.Is(err, apperr.ValidationErr) {
			h.render(w, r, http.StatusOK, view.PageContact, view.Page{
				Title:   "İletişim",
				IsAdmin: sess.IsAdmin,
				Data: view.ContactData{
					Error: apperr.ValidationErr.Msg(),
					Name:  params.Name,
					Email: params.Email,
					Body:  params.Body,
				},
			})
			return
		}
		h.handleError(w, r, sess, fmt.Errorf("message service create message: %w", err))
		return
	}

	h.render(w, r, http.StatusOK, view.PageContactSent, view.Page{Title: "Gönderildi", IsAdmin: sess.IsAdmin})
}
