package models

import "github.com/gin-gonic/gin"

// ApiResponse is the envelope every storefront endpoint returns.
type ApiResponse struct {
	Message         string      `json:"message"`
	Data            any         `json:"data,omitempty"`
	Error           bool        `json:"error,omitempty"`
	Meta            *Pagination `json:"meta,omitempty"`
	RequestedEntity string      `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"12"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"4"`
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}
