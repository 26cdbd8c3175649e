package customers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/profile"
)

// Handler exposes customer HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a customer handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

type customerResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Orders  int    `json:"orders"`
	Spent   string `json:"spent"`
	Status  string `json:"status"`
}

// Add records a new customer.
func (h *Handler) Add(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Add(c.UserContext(), AddInput{
		Owner:    owner,
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrEmailRequired) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(toCustomerResponse(customer))
}

// List returns all customers, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	items, err := h.service.List(c.UserContext(), owner)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]customerResponse, 0, len(items))
	for _, customer := range items {
		out = append(out, toCustomerResponse(customer))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"customers": out})
}

func toCustomerResponse(customer profile.Customer) customerResponse {
	return customerResponse{
		ID:      customer.ID,
		Name:    customer.Name,
		Company: customer.Company,
		Email:   customer.Email,
		Orders:  customer.Orders,
		Spent:   customer.Spent.StringFixed(2),
		Status:  customer.Status,
	}
}
