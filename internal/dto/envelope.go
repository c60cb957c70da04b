package dto

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListResponse is the envelope for list endpoints, extending Response with
// pagination metadata over the filtered set.
type ListResponse struct {
	Status     string `json:"status"`
	Data       any    `json:"data"`
	Count      int    `json:"count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// NewSuccess wraps a payload in a success envelope.
func NewSuccess(data any) Response {
	return Response{Status: "success", Data: data}
}

// NewSuccessMessage builds a success envelope carrying only a message,
// used by delete endpoints.
func NewSuccessMessage(message string) Response {
	return Response{Status: "success", Message: message}
}

// NewError builds an error envelope.
func NewError(message string) Response {
	return Response{Status: "error", Message: message}
}

// NewList wraps a page of records with its pagination metadata.
// count is the total number of matching records, not the page size.
func NewList(data any, count, limit, offset int) ListResponse {
	resp := ListResponse{
		Status: "success",
		Data:   data,
		Count:  count,
		Limit:  limit,
	}
	if limit > 0 {
		resp.Page = offset/limit + 1
		if count > 0 {
			resp.TotalPages = (count + limit - 1) / limit
		}
	}
	return resp
}
