package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DoctorPortal/DoctorPortal/internal/content"
)

// Response is the JSON envelope of every API answer.
type Response struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Pagination *content.Pagination `json:"pagination,omitempty"`
	Message    string              `json:"message,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// OK sends data with status 200.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(Response{Success: true, Data: data})
}

// Created sends data with status 201.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{Success: true, Data: data})
}

// Paginated sends one page of data with its pagination.
func Paginated(c *fiber.Ctx, data any, pagination content.Pagination) error {
	return c.JSON(Response{Success: true, Data: data, Pagination: &pagination})
}

// Deleted confirms a deletion.
func Deleted(c *fiber.Ctx, what string) error {
	return c.JSON(Response{Success: true, Message: what + " deleted"})
}

// Fail sends an error envelope with status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Success: false, Error: message})
}
