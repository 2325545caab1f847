package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"go-product-catalog/internal/dto"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// Helper to parse the numeric product ID path param
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		})
	}

	product, err := h.service.CreateProduct(req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCategory) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	if raw := c.Query("category"); raw != "" {
		category, err := model.ParseCategory(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		products, err := h.service.GetProductsByCategory(category)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(products)
	}

	if c.Query("min_price") != "" || c.Query("max_price") != "" {
		minPrice := c.QueryFloat("min_price", 0)
		maxPrice := c.QueryFloat("max_price", math.MaxFloat64)
		products, err := h.service.GetProductsByPriceRange(minPrice, maxPrice)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(products)
	}

	products, err := h.service.GetAllProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if product == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(id, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCategory):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrProductNotFound):
			// A concurrent delete can race a per-field write.
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}
	if product == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	deleted, err := h.service.DeleteProduct(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.SendStatus(204)
}
