package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// imageFormKeys maps multipart file keys onto product image slots.
var imageFormKeys = [product.ImageSlots]string{"image1", "image2", "image3", "image4"}

type tierPayload struct {
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

// CreateProduct handles POST /api/v1/products. The body is multipart:
// scalar fields plus optional image files and a moqs JSON array.
func (s *Server) CreateProduct(ctx echo.Context) error {
	price, err := strconv.ParseFloat(ctx.FormValue("price"), 64)
	if err != nil {
		return badRequest(ctx, "price must be a number")
	}

	var groupID *int64
	if raw := ctx.FormValue("group_id"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return badRequest(ctx, "group_id must be an integer")
		}
		groupID = &parsed
	}

	var specialPrice *float64
	if raw := ctx.FormValue("special_price"); raw != "" {
		parsed, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return badRequest(ctx, "special_price must be a number")
		}
		specialPrice = &parsed
	}

	tiers, err := parseTiers(ctx.FormValue("moqs"))
	if err != nil {
		return badRequest(ctx, "moqs must be a JSON array of {quantity, rate}")
	}

	uploads, err := collectUploads(ctx)
	if err != nil {
		return badRequest(ctx, "unreadable image upload")
	}

	cmd, err := commands.NewCreateProductCommand(
		ctx.FormValue("name"),
		price,
		ctx.FormValue("description"),
		groupID,
		specialPrice,
		tiers,
		uploads,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id. Optional width and height
// query parameters request sized image renditions.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid product id")
	}

	opts, err := imageOptionsFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, "width and height must be non-negative integers")
	}

	query, err := queries.NewGetProductQuery(id, opts)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

// UpdateProduct handles PUT /api/v1/products/:id. Fields left out of the
// multipart body stay untouched; a moqs field replaces the tier set.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid product id")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return badRequest(ctx, "body must be multipart form data")
	}

	patch, err := productPatchFromForm(ctx, form.Value)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var tiers []product.Tier
	replaceTiers := false
	if _, present := form.Value["moqs"]; present {
		replaceTiers = true
		tiers, err = parseTiers(ctx.FormValue("moqs"))
		if err != nil {
			return badRequest(ctx, "moqs must be a JSON array of {quantity, rate}")
		}
	}

	uploads, err := collectUploads(ctx)
	if err != nil {
		return badRequest(ctx, "unreadable image upload")
	}

	cmd, err := commands.NewUpdateProductCommand(id, patch, tiers, replaceTiers, uploads)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"updated": updated})
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceMOQs handles PUT /api/v1/products/:id/moqs with a JSON array of
// tiers.
func (s *Server) ReplaceMOQs(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid product id")
	}

	var payloads []tierPayload
	if err := ctx.Bind(&payloads); err != nil {
		return badRequest(ctx, "body must be a JSON array of {quantity, rate}")
	}

	tiers, err := tiersFromPayloads(payloads)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReplaceMOQsCommand(id, tiers)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ReplaceMOQs.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func productPatchFromForm(ctx echo.Context, values map[string][]string) (ports.ProductPatch, error) {
	var patch ports.ProductPatch

	if _, present := values["name"]; present {
		name := ctx.FormValue("name")
		patch.Name = &name
	}
	if _, present := values["price"]; present {
		price, err := strconv.ParseFloat(ctx.FormValue("price"), 64)
		if err != nil {
			return ports.ProductPatch{}, errors.New("price must be a number")
		}
		patch.Price = &price
	}
	if _, present := values["description"]; present {
		description := ctx.FormValue("description")
		patch.Description = &description
	}
	if _, present := values["status"]; present {
		status := product.Status(ctx.FormValue("status"))
		patch.Status = &status
	}
	if _, present := values["group_id"]; present {
		groupID, err := strconv.ParseInt(ctx.FormValue("group_id"), 10, 64)
		if err != nil {
			return ports.ProductPatch{}, errors.New("group_id must be an integer")
		}
		patch.GroupID = &groupID
	}
	if _, present := values["special_price"]; present {
		specialPrice, err := strconv.ParseFloat(ctx.FormValue("special_price"), 64)
		if err != nil {
			return ports.ProductPatch{}, errors.New("special_price must be a number")
		}
		patch.SpecialPrice = &specialPrice
	}

	return patch, nil
}

func parseTiers(raw string) ([]product.Tier, error) {
	if raw == "" {
		return nil, nil
	}

	var payloads []tierPayload
	if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
		return nil, err
	}

	return tiersFromPayloads(payloads)
}

func tiersFromPayloads(payloads []tierPayload) ([]product.Tier, error) {
	tiers := make([]product.Tier, 0, len(payloads))
	for _, payload := range payloads {
		tier, err := product.NewTier(payload.Quantity, payload.Rate)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// collectUploads reads the imageN multipart files into staged uploads.
func collectUploads(ctx echo.Context) ([]commands.ImageUpload, error) {
	var uploads []commands.ImageUpload

	for slot, key := range imageFormKeys {
		header, err := ctx.FormFile(key)
		if err != nil {
			continue
		}

		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		content, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, commands.ImageUpload{
			Slot:    slot,
			Name:    header.Filename,
			Content: content,
		})
	}

	return uploads, nil
}
