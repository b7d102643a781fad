package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/storefront/internal/models"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rs/zerolog/log"
)

// ListProductsPageHandler renders every product in the catalog.
func (s *Server) ListProductsPageHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.productRepo.GetAll(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("component", "ListProductsPageHandler").Msg("")
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	s.render(w, r, http.StatusOK, "products.html", "Products", products)
}

// AddProductFormHandler renders an empty product form.
func (s *Server) AddProductFormHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "product_form.html", "Add product", productForm{Action: "/add"})
}

// AddProductHandler creates a product from p_name, p_price and p_quantity.
func (s *Server) AddProductHandler(w http.ResponseWriter, r *http.Request) {
	product, form, errs := parseProductForm(r)
	form.Action = "/add"
	if len(errs) > 0 {
		form.Errors = errs
		s.render(w, r, http.StatusBadRequest, "product_form.html", "Add product", form)
		return
	}

	if _, err := s.productRepo.Create(r.Context(), product); err != nil {
		s.storeError(w, r, form, "Add product", err)
		return
	}

	http.Redirect(w, r, "/products", http.StatusFound)
}

// EditProductFormHandler renders the form pre-filled with the stored product.
func (s *Server) EditProductFormHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := s.productRepo.GetByID(r.Context(), id)
	if err != nil {
		s.lookupError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "product_form.html", "Edit product", productForm{
		Action:   fmt.Sprintf("/edit/%d", product.ID),
		Name:     product.Name,
		Price:    strconv.Itoa(product.Price),
		Quantity: strconv.Itoa(product.Quantity),
	})
}

// EditProductHandler replaces name, price and quantity of an existing product.
func (s *Server) EditProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, form, errs := parseProductForm(r)
	form.Action = fmt.Sprintf("/edit/%d", id)
	if len(errs) > 0 {
		form.Errors = errs
		s.render(w, r, http.StatusBadRequest, "product_form.html", "Edit product", form)
		return
	}

	product.ID = id
	if _, err := s.productRepo.Update(r.Context(), product); err != nil {
		s.storeError(w, r, form, "Edit product", err)
		return
	}

	http.Redirect(w, r, "/products", http.StatusFound)
}

// DeleteProductPageHandler removes a product and returns to the listing.
func (s *Server) DeleteProductPageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := s.productRepo.Delete(r.Context(), id); err != nil {
		s.lookupError(w, r, err)
		return
	}

	http.Redirect(w, r, "/products", http.StatusFound)
}

func (s *Server) lookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repo.ErrProductNotFound) {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	log.Ctx(r.Context()).Error().Err(err).Str("component", "catalog").Msg("")
	http.Error(w, "could not access product", http.StatusInternalServerError)
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, form productForm, title string, err error) {
	if errors.Is(err, repo.ErrNameTooLong) {
		form.Errors = []ProductValidationError{{
			Field:       "p_name",
			Description: fmt.Sprintf("Name must be at most %d characters", models.MaxProductNameLength),
		}}
		s.render(w, r, http.StatusBadRequest, "product_form.html", title, form)
		return
	}
	s.lookupError(w, r, err)
}
