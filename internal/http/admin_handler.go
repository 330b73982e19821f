package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/view"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/service"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/session"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/whatsapp"
)

const (
	adminProductsPath = "/admin/products"
	adminMessagesPath = "/admin/messages"
)

type adminHandler struct {
	*responder
	productSvc service.ProductService
	messageSvc service.MessageService
	whatsapp   whatsapp.Linker
}

func newAdminHandler(
	rs *responder,
	productSvc service.ProductService,
	messageSvc service.MessageService,
	linker whatsapp.Linker,
) *adminHandler {
	return &adminHandler{
		responder:  rs,
		productSvc: productSvc,
		messageSvc: messageSvc,
		whatsapp:   linker,
	}
}

func (h *adminHandler) Dashboard(w http.ResponseWriter, r *http.Request, sess session.Session) {
	unread, err := h.messageSvc.CountUnread(r.Context())
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("message service count unread: %w", err))
		return
	}

	h.render(w, r, http.StatusOK, view.PageAdmin, view.Page{
		Title:   "Panel",
		IsAdmin: true,
		Data:    view.AdminData{Unread: unread, WhatsAppEnabled: h.whatsapp.Enabled()},
	})
}

func (h *adminHandler) Products(w http.ResponseWriter, r *http.Request, sess session.Session) {
	h.renderProducts(w, r, sess, "", view.ProductForm{LeadTimeDays: 1})
}

func (h *adminHandler) renderProducts(w http.ResponseWriter, r *http.Request, sess session.Session, formErr string, form view.ProductForm) {
	products, err := h.productSvc.ListProducts(r.Context(), service.ListProductsParams{})
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service list products: %w", err))
		return
	}

	h.render(w, r, http.StatusOK, view.PageAdminProducts, view.Page{
		Title:   "Ürün Yönetimi",
		IsAdmin: true,
		Data: view.AdminProductsData{
			Error:     formErr,
			Form:      form,
			Materials: materialOptions(form.Material),
			Products:  products,
		},
	})
}

func (h *adminHandler) AddProduct(w http.ResponseWriter, r *http.Request, sess session.Session) {
	input := productInputFromForm(r)

	if _, err := h.productSvc.CreateProduct(r.Context(), input); err != nil {
		if errors.Is(err, apperr.ValidationErr) {
			h.renderProducts(w, r, sess, apperr.ValidationErr.Msg(), productFormFromInput(0, input))
			return
		}
		h.handleError(w, r, sess, fmt.Errorf("product service create product: %w", err))
		return
	}

	redirect(w, r, adminProductsPath)
}

func (h *adminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if err := h.productSvc.DeleteProduct(r.Context(), formID(r)); err != nil {
		h.handleError(w, r, sess, fmt.Errorf("product service delete product: %w", err))
		return
	}
	redirect(w, r, adminProductsPath)
}

func (h *adminHandler) EditProductForm(w http.ResponseWriter, r *http.Request, sess session.Session) {
	id, ok := pathID(r)
	if !ok {
		h.renderEdit(w, r, view.EditProductData{})
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ProductNotFoundErr) {
			h.renderEdit(w, r, view.EditProductData{})
			return
		}
		h.handleError(w, r, sess, fmt.Errorf("product service get product: %w", err))
		return
	}

	h.renderEdit(w, r, view.EditProductData{
		Found:     true,
		Form:      view.ProductFormFrom(product),
		Materials: materialOptions(product.Material),
	})
}

func (h *adminHandler) EditProduct(w http.ResponseWriter, r *http.Request, sess session.Session) {
	ctx := r.Context()
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, adminProductsPath)
		return
	}

	if _, err := h.productSvc.GetProduct(ctx, id); err != nil {
		if errors.Is(err, apperr.ProductNotFoundErr) {
			redirect(w, r, adminProductsPath)
			return
		}
		h.handleError(w, r, sess, fmt.Errorf("product service get product: %w", err))
		return
	}

	input := productInputFromForm(r)
	if _, err := h.productSvc.UpdateProduct(ctx, id, input); err != nil {
		if errors.Is(err, apperr.ValidationErr) {
			form := productFormFromInput(id, input)
			h.renderEdit(w, r, view.EditProductData{
				Found:     true,
				Error:     apperr.ValidationErr.Msg(),
				Form:      form,
				Materials: materialOptions(form.Material),
			})
			return
		}
		h.handleError(w, r, sess, fmt.Errorf("product service update product: %w", err))
		return
	}

	redirect(w, r, adminProductsPath)
}

func (h *adminHandler) renderEdit(w http.ResponseWriter, r *http.Request, data view.EditProductData) {
	h.render(w, r, http.StatusOK, view.PageEditProduct, view.Page{
		Title:   "Düzenle",
		IsAdmin: true,
		Data:    data,
	})
}

func (h *adminHandler) Messages(w http.ResponseWriter, r *http.Request, sess session.Session) {
	ctx := r.Context()

	msgs, err := h.messageSvc.ListMessages(ctx)
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("message service list messages: %w", err))
		return
	}
	unread, err := h.messageSvc.CountUnread(ctx)
	if err != nil {
		h.handleError(w, r, sess, fmt.Errorf("message service count unread: %w", err))
		return
	}

	h.render(w, r, http.StatusOK, view.PageMessages, view.Page{
		Title:   "Mesajlar",
		IsAdmin: true,
		Data:    view.MessagesData{Unread: unread, Messages: msgs},
	})
}

func (h *adminHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if err := h.messageSvc.MarkRead(r.Context(), formID(r)); err != nil {
		h.handleError(w, r, sess, fmt.Errorf("message service mark read: %w", err))
		return
	}
	redirect(w, r, adminMessagesPath)
}

func (h *adminHandler) DeleteMessage(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if err := h.messageSvc.DeleteMessage(r.Context(), formID(r)); err != nil {
		h.handleError(w, r, sess, fmt.Errorf("message service delete message: %w", err))
		return
	}
	redirect(w, r, adminMessagesPath)
}

// pathID parses the {id} route parameter. Values outside the id column range
// cannot match any product.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func productFormFromInput(id int64, in service.ProductInput) view.ProductForm {
	return view.ProductFormFrom(model.Product{
		ID:           id,
		Name:         in.Name,
		Category:     in.Category,
		Material:     in.Material,
		Price:        in.Price,
		Stock:        in.Stock,
		LeadTimeDays: in.LeadTimeDays,
		PhotoURL:     in.PhotoURL,
		STLURL:       in.STLURL,
	})
}
